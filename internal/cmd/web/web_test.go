package web

import (
	"bytes"
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/louisbranch/character-gallery/internal/services/gallery/storage"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8086" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8086")
	}
	if cfg.APIBaseURL != "http://localhost:8080/api/v0" {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, "http://localhost:8080/api/v0")
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("APITimeout = %s, want %s", cfg.APITimeout, 10*time.Second)
	}
	if cfg.CacheTTL != 24*time.Hour {
		t.Fatalf("CacheTTL = %s, want %s", cfg.CacheTTL, 24*time.Hour)
	}
	if cfg.CachePath != "" || cfg.CacheRedis != "" {
		t.Fatalf("cache should be disabled by default, got path=%q redis=%q", cfg.CachePath, cfg.CacheRedis)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("CHARACTER_GALLERY_API_BASE_URL", "https://api.example.test/api/v0")
	t.Setenv("CHARACTER_GALLERY_API_KEY", "secret")
	t.Setenv("CHARACTER_GALLERY_WEB_CACHE_TTL", "1h")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.test/api/v0" {
		t.Fatalf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("CacheTTL = %s, want %s", cfg.CacheTTL, time.Hour)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CHARACTER_GALLERY_WEB_HTTP_ADDR", "env:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-api-timeout", "3s",
		"-cache-path", "/tmp/gallery.db",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("APITimeout = %s, want %s", cfg.APITimeout, 3*time.Second)
	}
	if cfg.CachePath != "/tmp/gallery.db" {
		t.Fatalf("CachePath = %q, want %q", cfg.CachePath, "/tmp/gallery.db")
	}
}

func TestParseConfigRejectsTwoCaches(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	_, err := ParseConfig(fs, []string{"-cache-path", "a.db", "-cache-redis-addr", "localhost:6379"})
	if err == nil {
		t.Fatal("expected mutually exclusive cache error")
	}
}

func TestParseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("CHARACTER_GALLERY_API_TIMEOUT", "soon")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestOpenStoreDisabled(t *testing.T) {
	t.Parallel()

	store, err := openStore(context.Background(), Config{})
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	if store != nil {
		t.Fatalf("openStore() = %T, want nil", store)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	t.Parallel()

	store, err := openStore(context.Background(), Config{CachePath: filepath.Join(t.TempDir(), "cache.db")})
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer store.Close()
	if _, err := store.DeleteExpired(context.Background(), time.Now()); err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
}

func TestOpenStoreRedis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	store, err := openStore(context.Background(), Config{CacheRedis: mr.Addr()})
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer store.Close()
	if err := store.PutCacheEntry(context.Background(), storage.CacheEntry{CacheKey: "k", Scope: "s"}); err != nil {
		t.Fatalf("PutCacheEntry() error = %v", err)
	}
}

func TestServeRejectsBadBaseURL(t *testing.T) {
	t.Parallel()

	err := serve(context.Background(), Config{HTTPAddr: "127.0.0.1:0", APIBaseURL: "ftp://nope"}, log.New(&bytes.Buffer{}, "", 0))
	if err == nil || !strings.Contains(err.Error(), "character api client") {
		t.Fatalf("serve() error = %v, want client init error", err)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var logs bytes.Buffer
	cfg := Config{
		HTTPAddr:   "127.0.0.1:0",
		APIBaseURL: "http://127.0.0.1:1/api/v0",
		CachePath:  filepath.Join(t.TempDir(), "cache.db"),
	}
	result := make(chan error, 1)
	go func() { result <- serve(ctx, cfg, log.New(&logs, "", 0)) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("serve() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

type countingStore struct {
	storage.Store
	calls atomic.Int64
}

func (s *countingStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	s.calls.Add(1)
	return 2, nil
}

func TestPurgeExpiredRunsUntilCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	store := &countingStore{}
	var logs bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		purgeExpired(ctx, store, 5*time.Millisecond, log.New(&logs, "", 0))
	}()

	deadline := time.After(time.Second)
	for store.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("purge did not tick")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
	if !strings.Contains(logs.String(), "snapshot purge removed=2") {
		t.Fatalf("logs = %q, want purge line", logs.String())
	}
}
