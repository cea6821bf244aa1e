package characterapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/storage"
)

const (
	listScope = "characters.list"
	getScope  = "characters.get"

	// DefaultSnapshotTTL bounds how long a stored snapshot may be served.
	DefaultSnapshotTTL = 24 * time.Hour
)

// SnapshotStore is the subset of storage.Store the snapshot fallback needs.
type SnapshotStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error
}

// SnapshotOptions tunes the snapshot fallback.
type SnapshotOptions struct {
	// TTL is how long a snapshot stays servable (DefaultSnapshotTTL when zero).
	TTL time.Duration
	// Now overrides the clock (tests).
	Now func() time.Time
	// Logger receives store failures. Defaults to log.Default().
	Logger *log.Logger
}

// snapshotClient records successful reads and replays them while the API is unavailable.
type snapshotClient struct {
	next   Client
	store  SnapshotStore
	ttl    time.Duration
	now    func() time.Time
	logger *log.Logger
}

// WithSnapshots wraps next so that successful reads are stored and served
// back, flagged stale, when a later read fails with ErrUnavailable. A nil
// store returns next unchanged.
func WithSnapshots(next Client, store SnapshotStore, opts SnapshotOptions) Client {
	if store == nil || next == nil {
		return next
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultSnapshotTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &snapshotClient{
		next:   next,
		store:  store,
		ttl:    opts.TTL,
		now:    opts.Now,
		logger: opts.Logger,
	}
}

func listCacheKey(page int) string {
	if page < 0 {
		page = 0
	}
	return "characters:list:page=" + strconv.Itoa(page)
}

func getCacheKey(id character.ID) string {
	return "characters:get:" + id.String()
}

func (c *snapshotClient) ListCharacters(ctx context.Context, input ListInput) (ListOutput, error) {
	key := listCacheKey(input.Page)
	out, err := c.next.ListCharacters(ctx, input)
	if err == nil {
		c.save(ctx, key, listScope, out)
		return out, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return ListOutput{}, err
	}

	var cached ListOutput
	if !c.load(ctx, key, &cached) {
		return ListOutput{}, err
	}
	cached.Stale = true
	return cached, nil
}

func (c *snapshotClient) GetCharacter(ctx context.Context, id character.ID) (GetOutput, error) {
	key := getCacheKey(id)
	out, err := c.next.GetCharacter(ctx, id)
	if err == nil {
		c.save(ctx, key, getScope, out.Character)
		return out, nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return GetOutput{}, err
	}

	var cached character.Character
	if !c.load(ctx, key, &cached) {
		return GetOutput{}, err
	}
	return GetOutput{Character: cached, Stale: true}, nil
}

func (c *snapshotClient) save(ctx context.Context, key, scope string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Printf("snapshot encode failed key=%s err=%v", key, err)
		return
	}
	now := c.now().UTC()
	entry := storage.CacheEntry{
		CacheKey:     key,
		Scope:        scope,
		PayloadBytes: payload,
		CheckedAt:    now,
		ExpiresAt:    now.Add(c.ttl),
	}
	if err := c.store.PutCacheEntry(ctx, entry); err != nil {
		c.logger.Printf("snapshot store failed key=%s err=%v", key, err)
	}
}

// load decodes the live snapshot under key into dst.
func (c *snapshotClient) load(ctx context.Context, key string, dst any) bool {
	entry, ok, err := c.store.GetCacheEntry(context.WithoutCancel(ctx), key)
	if err != nil {
		c.logger.Printf("snapshot read failed key=%s err=%v", key, err)
		return false
	}
	if !ok || entry.Expired(c.now()) {
		return false
	}
	if err := json.Unmarshal(entry.PayloadBytes, dst); err != nil {
		c.logger.Printf("snapshot decode failed key=%s err=%v", key, fmt.Errorf("%w: %w", ErrDecode, err))
		return false
	}
	c.logger.Printf("serving stale snapshot key=%s checked_at=%s", key, entry.CheckedAt.Format(time.RFC3339))
	return true
}
