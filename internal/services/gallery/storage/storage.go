package storage

import (
	"context"
	"time"
)

// CacheEntry stores one API payload snapshot and its freshness metadata.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	CheckedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the entry is past its expiry at now. A zero
// expiry never expires.
func (e CacheEntry) Expired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(e.ExpiresAt)
}

// Store is the contract for snapshot persistence.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
