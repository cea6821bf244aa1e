package view

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
)

// Gallery is the listing view for one page of characters.
type Gallery struct {
	client characterapi.Client
	logger *log.Logger
	page   int

	mu      sync.Mutex
	mounted bool
	state   GalleryState
}

// NewGallery creates a gallery view for the zero-based page index.
func NewGallery(client characterapi.Client, logger *log.Logger, page int) *Gallery {
	if logger == nil {
		logger = log.Default()
	}
	if page < 0 {
		page = 0
	}
	return &Gallery{
		client: client,
		logger: logger,
		page:   page,
		state:  GalleryState{Status: StatusLoading, Page: page},
	}
}

// Mount fetches the listing once and returns the resulting state. Later
// calls return the committed state without fetching again.
func (g *Gallery) Mount(ctx context.Context) GalleryState {
	g.mu.Lock()
	if g.mounted {
		state := g.state
		g.mu.Unlock()
		return state
	}
	g.mounted = true
	g.mu.Unlock()

	next := GalleryState{Page: g.page}
	if g.client == nil {
		next.Status = StatusFailed
		next.Reason = errClientNotConfigured
	} else {
		out, err := g.client.ListCharacters(ctx, characterapi.ListInput{Page: g.page})
		if err != nil {
			next.Status = StatusFailed
			next.Reason = err
		} else {
			next.Status = StatusLoaded
			next.Characters = slices.Clone(out.Characters)
			next.Pagination = out.Pagination
			next.Stale = out.Stale
		}
	}
	if next.Reason != nil {
		g.logger.Printf("fetch failed view=gallery page=%d err=%v", g.page, next.Reason)
	}

	g.mu.Lock()
	g.state = next
	g.mu.Unlock()
	return next
}

// State returns the committed state.
func (g *Gallery) State() GalleryState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
