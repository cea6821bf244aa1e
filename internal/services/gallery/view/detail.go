package view

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
)

var errClientNotConfigured = errors.New("character api client is not configured")

// Detail is the single-character view. Each SetID starts a new generation;
// only the newest generation may commit state.
type Detail struct {
	client characterapi.Client
	logger *log.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      DetailState
}

// NewDetail creates an idle detail view in the loading state.
func NewDetail(client characterapi.Client, logger *log.Logger) *Detail {
	if logger == nil {
		logger = log.Default()
	}
	return &Detail{client: client, logger: logger}
}

// SetRawID resolves a route parameter. Values that are not non-negative
// integers resolve to StatusNotFound without a fetch.
func (d *Detail) SetRawID(ctx context.Context, raw string) DetailState {
	id, ok := character.ParseID(raw)
	if !ok {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.generation++
		d.cancelLocked()
		d.state = DetailState{Status: StatusNotFound}
		return d.state
	}
	return d.SetID(ctx, id)
}

// SetID fetches id under a new generation, cancelling any fetch still in
// flight. It returns the state current once its own fetch resolves, which
// is a newer generation's state if this call was superseded.
func (d *Detail) SetID(ctx context.Context, id character.ID) DetailState {
	fetchCtx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.generation++
	generation := d.generation
	d.cancelLocked()
	d.cancel = cancel
	d.state = DetailState{Status: StatusLoading, ID: id}
	d.mu.Unlock()

	next := d.fetch(fetchCtx, id)
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		return d.state
	}
	d.cancel = nil
	if next.Reason != nil {
		d.logger.Printf("fetch failed view=detail id=%s err=%v", id, next.Reason)
	}
	d.state = next
	return d.state
}

// State returns the committed state.
func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Close cancels the in-flight fetch, if any. A superseded fetch that
// returns afterwards is discarded.
func (d *Detail) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.cancelLocked()
}

func (d *Detail) cancelLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Detail) fetch(ctx context.Context, id character.ID) DetailState {
	if d.client == nil {
		return DetailState{Status: StatusFailed, ID: id, Reason: errClientNotConfigured}
	}
	out, err := d.client.GetCharacter(ctx, id)
	switch {
	case errors.Is(err, characterapi.ErrNotFound):
		return DetailState{Status: StatusNotFound, ID: id}
	case err != nil:
		return DetailState{Status: StatusFailed, ID: id, Reason: err}
	}
	record := out.Character
	return DetailState{Status: StatusLoaded, ID: id, Character: &record, Stale: out.Stale}
}
