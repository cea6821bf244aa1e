package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/character-gallery/internal/platform/timeouts"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/observability"
	"github.com/louisbranch/character-gallery/internal/services/gallery/routepath"
	gallerystatic "github.com/louisbranch/character-gallery/internal/services/gallery/static"
	"github.com/louisbranch/character-gallery/internal/services/gallery/templates"
)

// Config defines startup inputs for the gallery service.
type Config struct {
	HTTPAddr        string
	CharacterClient characterapi.Client
	// Portraits selects card portraits. Defaults to the single static asset.
	Portraits templates.PortraitResolver
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Server hosts the gallery HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with its middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.CharacterClient == nil {
		return nil, errors.New("character client is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	portraits := cfg.Portraits
	if portraits == nil {
		portraits = templates.StaticPortraits{}
	}
	h := &handlers{client: cfg.CharacterClient, portraits: portraits, logger: logger}

	getOnly := httpx.RequireMethod(http.MethodGet)
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, getOnly(http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(gallerystatic.FS)))))
	mux.Handle(routepath.Health, getOnly(http.HandlerFunc(h.health)))
	mux.Handle(routepath.CharacterPattern, getOnly(http.HandlerFunc(h.detail)))
	mux.Handle(routepath.Root+"{$}", getOnly(http.HandlerFunc(h.gallery)))
	mux.Handle(routepath.Root, http.HandlerFunc(h.notFound))

	return httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a gallery server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose gallery handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gallery http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
