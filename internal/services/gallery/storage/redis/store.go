// Package redis stores gallery snapshots in Redis. Expiry is delegated to
// key TTLs, so DeleteExpired has nothing to sweep.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/louisbranch/character-gallery/internal/services/gallery/storage"
)

// DefaultKeyPrefix namespaces snapshot keys.
const DefaultKeyPrefix = "gallery:snapshot:"

var errNotConfigured = errors.New("storage is not configured")

// Options configures the Redis connection.
type Options struct {
	// KeyPrefix defaults to DefaultKeyPrefix.
	KeyPrefix    string
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
}

// Store persists snapshots as JSON values.
type Store struct {
	client goredis.UniversalClient
	prefix string
	owned  bool
	now    func() time.Time
}

type record struct {
	Scope     string `json:"scope"`
	Payload   []byte `json:"payload"`
	CheckedAt int64  `json:"checked_at"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// Open connects to the Redis server at addr and verifies it with PING.
func Open(ctx context.Context, addr string, opts *Options) (*Store, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		MaxRetries:   opts.MaxRetries,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	store := New(client, opts.KeyPrefix)
	store.owned = true
	return store, nil
}

// New wraps an existing client. The caller keeps ownership of client.
func New(client goredis.UniversalClient, keyPrefix string) *Store {
	if strings.TrimSpace(keyPrefix) == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: keyPrefix, now: time.Now}
}

// Close closes the client when the store opened it.
func (s *Store) Close() error {
	if s == nil || s.client == nil || !s.owned {
		return nil
	}
	return s.client.Close()
}

// GetCacheEntry loads a snapshot by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return storage.CacheEntry{}, false, err
	}
	if s == nil || s.client == nil {
		return storage.CacheEntry{}, false, errNotConfigured
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, errors.New("cache key is required")
	}

	raw, err := s.client.Get(ctx, s.prefix+cacheKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return storage.CacheEntry{}, false, nil
	}
	if err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}

	var stored record
	if err := json.Unmarshal(raw, &stored); err != nil {
		return storage.CacheEntry{}, false, fmt.Errorf("decode cache entry %s: %w", cacheKey, err)
	}
	entry := storage.CacheEntry{
		CacheKey:     cacheKey,
		Scope:        stored.Scope,
		PayloadBytes: stored.Payload,
		CheckedAt:    time.UnixMilli(stored.CheckedAt).UTC(),
	}
	if stored.ExpiresAt > 0 {
		entry.ExpiresAt = time.UnixMilli(stored.ExpiresAt).UTC()
	}
	return entry, true, nil
}

// PutCacheEntry writes a snapshot. A non-zero expiry becomes the key TTL;
// an entry that is already expired removes the key instead.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.client == nil {
		return errNotConfigured
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.CacheKey == "" {
		return errors.New("cache key is required")
	}
	if entry.Scope == "" {
		return errors.New("cache scope is required")
	}

	now := s.now().UTC()
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = now
	}
	stored := record{
		Scope:     entry.Scope,
		Payload:   entry.PayloadBytes,
		CheckedAt: entry.CheckedAt.UTC().UnixMilli(),
	}
	var ttl time.Duration
	if !entry.ExpiresAt.IsZero() {
		ttl = entry.ExpiresAt.Sub(now)
		if ttl <= 0 {
			return s.DeleteCacheEntry(ctx, entry.CacheKey)
		}
		stored.ExpiresAt = entry.ExpiresAt.UTC().UnixMilli()
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", entry.CacheKey, err)
	}
	if err := s.client.Set(ctx, s.prefix+entry.CacheKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a snapshot by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.client == nil {
		return errNotConfigured
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return errors.New("cache key is required")
	}
	if err := s.client.Del(ctx, s.prefix+cacheKey).Err(); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts keys when their TTL lapses.
func (s *Store) DeleteExpired(ctx context.Context, _ time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.client == nil {
		return 0, errNotConfigured
	}
	return 0, nil
}

var _ storage.Store = (*Store)(nil)
