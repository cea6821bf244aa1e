// Package web parses gallery web flags and launches the service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/character-gallery/internal/platform/cmd"
	"github.com/louisbranch/character-gallery/internal/platform/timeouts"
	"github.com/louisbranch/character-gallery/internal/services/gallery"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	"github.com/louisbranch/character-gallery/internal/services/gallery/storage"
	redisstore "github.com/louisbranch/character-gallery/internal/services/gallery/storage/redis"
	"github.com/louisbranch/character-gallery/internal/services/gallery/storage/sqlite"
	"github.com/louisbranch/character-gallery/internal/services/gallery/templates"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string        `env:"CHARACTER_GALLERY_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	APIBaseURL string        `env:"CHARACTER_GALLERY_API_BASE_URL" envDefault:"http://localhost:8080/api/v0"`
	APIKey     string        `env:"CHARACTER_GALLERY_API_KEY"`
	APITimeout time.Duration `env:"CHARACTER_GALLERY_API_TIMEOUT" envDefault:"10s"`
	CachePath  string        `env:"CHARACTER_GALLERY_WEB_CACHE_PATH"`
	CacheRedis string        `env:"CHARACTER_GALLERY_WEB_CACHE_REDIS_ADDR"`
	CacheTTL   time.Duration `env:"CHARACTER_GALLERY_WEB_CACHE_TTL" envDefault:"24h"`
	AssetBase  string        `env:"CHARACTER_GALLERY_WEB_ASSET_BASE_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Character API base URL")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Character API key")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Character API request timeout")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite snapshot cache path (empty disables)")
	fs.StringVar(&cfg.CacheRedis, "cache-redis-addr", cfg.CacheRedis, "Redis snapshot cache address (empty disables)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long a snapshot may be served")
	fs.StringVar(&cfg.AssetBase, "asset-base-url", cfg.AssetBase, "External host for portrait assets (empty serves embedded assets)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.CachePath) != "" && strings.TrimSpace(cfg.CacheRedis) != "" {
		return Config{}, errors.New("cache-path and cache-redis-addr are mutually exclusive")
	}
	return cfg, nil
}

// Run starts the gallery web server.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{ShutdownTimeout: timeouts.Shutdown}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context) error {
		return serve(ctx, cfg, log.Default())
	})
}

func serve(ctx context.Context, cfg Config, logger *log.Logger) error {
	api, err := characterapi.New(characterapi.Config{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.APITimeout,
	})
	if err != nil {
		return fmt.Errorf("init character api client: %w", err)
	}

	var client characterapi.Client = api
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		client = characterapi.WithSnapshots(api, store, characterapi.SnapshotOptions{TTL: cfg.CacheTTL, Logger: logger})
		go purgeExpired(ctx, store, timeouts.CachePurge, logger)
	}

	server, err := gallery.NewServer(ctx, gallery.Config{
		HTTPAddr:        cfg.HTTPAddr,
		CharacterClient: client,
		Portraits:       templates.AssetPortraits{BaseURL: cfg.AssetBase},
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("init gallery server: %w", err)
	}
	defer server.Close()

	logger.Printf("gallery listening addr=%s api=%s", server.Addr(), cfg.APIBaseURL)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve gallery: %w", err)
	}
	return nil
}

// openStore returns the configured snapshot store, or nil when snapshots are off.
func openStore(ctx context.Context, cfg Config) (storage.Store, error) {
	if path := strings.TrimSpace(cfg.CachePath); path != "" {
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open snapshot cache: %w", err)
		}
		return store, nil
	}
	if addr := strings.TrimSpace(cfg.CacheRedis); addr != "" {
		store, err := redisstore.Open(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("open snapshot cache: %w", err)
		}
		return store, nil
	}
	return nil, nil
}

func purgeExpired(ctx context.Context, store storage.Store, interval time.Duration, logger *log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := store.DeleteExpired(ctx, now)
			if err != nil {
				if ctx.Err() == nil {
					logger.Printf("snapshot purge failed err=%v", err)
				}
				continue
			}
			if removed > 0 {
				logger.Printf("snapshot purge removed=%d", removed)
			}
		}
	}
}
