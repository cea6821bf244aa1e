// Package sqlite persists gallery API snapshots in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/character-gallery/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/character-gallery/internal/services/gallery/storage"
	"github.com/louisbranch/character-gallery/internal/services/gallery/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var errNotConfigured = errors.New("storage is not configured")

// Store provides SQLite-backed snapshot persistence.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens a SQLite snapshot store at path and applies pending migrations.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}

	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCacheEntry returns the snapshot stored under cacheKey.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (storage.CacheEntry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.CacheEntry{}, false, errNotConfigured
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return storage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	var (
		entry     storage.CacheEntry
		checkedAt int64
		expiresAt int64
	)
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT cache_key, scope, payload_json, checked_at, expires_at
FROM cache_entries
WHERE cache_key = ?
`, cacheKey)
	if err := row.Scan(&entry.CacheKey, &entry.Scope, &entry.PayloadBytes, &checkedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.CacheEntry{}, false, nil
		}
		return storage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.CheckedAt = unixMillisToTime(checkedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutCacheEntry inserts or replaces the snapshot under entry.CacheKey.
func (s *Store) PutCacheEntry(ctx context.Context, entry storage.CacheEntry) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if entry.PayloadBytes == nil {
		entry.PayloadBytes = []byte{}
	}
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO cache_entries (cache_key, scope, payload_json, checked_at, expires_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(cache_key) DO UPDATE SET
	scope = excluded.scope,
	payload_json = excluded.payload_json,
	checked_at = excluded.checked_at,
	expires_at = excluded.expires_at
`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		timeToUnixMillis(entry.CheckedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes the snapshot under cacheKey. Missing keys are not an error.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if s == nil || s.sqlDB == nil {
		return errNotConfigured
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// DeleteExpired removes every snapshot whose expiry is at or before now.
// Entries without an expiry are kept.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, errNotConfigured
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?`,
		timeToUnixMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count expired cache entries: %w", err)
	}
	return removed, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
