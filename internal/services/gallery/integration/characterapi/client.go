package characterapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/platform/timeouts"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/httpx"
)

const (
	// DefaultBaseURL matches the versioned API root of the character server.
	DefaultBaseURL = "http://localhost:8080/api/v0"
	// DefaultTimeout bounds a single API request.
	DefaultTimeout = timeouts.APIRequest
	// APIKeyHeader carries the optional API key.
	APIKeyHeader = "X-API-Key"

	tracerName   = "github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	maxBodyBytes = 4 << 20
)

// Client reads character records from the upstream API.
type Client interface {
	// ListCharacters fetches one page of the character listing.
	ListCharacters(ctx context.Context, input ListInput) (ListOutput, error)
	// GetCharacter fetches a single record by id.
	GetCharacter(ctx context.Context, id character.ID) (GetOutput, error)
}

// Config contains configuration options for the API client.
type Config struct {
	// BaseURL is the API root (optional, defaults to DefaultBaseURL).
	BaseURL string
	// APIKey is sent as X-API-Key when set.
	APIKey string
	// Timeout for API requests (optional, defaults to DefaultTimeout).
	Timeout time.Duration
	// HTTPClient overrides the transport (optional).
	HTTPClient *http.Client
	// TracerProvider overrides the global tracer provider (optional).
	TracerProvider trace.TracerProvider
	// Propagator overrides the global propagator (optional).
	Propagator propagation.TextMapPropagator
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base url %q must use http or https", cfg.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base url %q has no host", cfg.BaseURL)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	return nil
}

// HTTPClient is the net/http implementation of Client.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// New creates a new API client with the given configuration.
func New(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	tracerProvider := cfg.TracerProvider
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}
	propagator := cfg.Propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}

	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		tracer:     tracerProvider.Tracer(tracerName),
		propagator: propagator,
	}, nil
}

// ListCharacters fetches GET {base}/characters.
func (c *HTTPClient) ListCharacters(ctx context.Context, input ListInput) (ListOutput, error) {
	query := url.Values{}
	if input.Page > 0 {
		query.Set("page", strconv.Itoa(input.Page))
	}
	body, err := c.get(ctx, "characterapi.list", "/characters", query)
	if err != nil {
		return ListOutput{}, err
	}
	out, err := decodeList(body)
	if err != nil {
		return ListOutput{}, fmt.Errorf("%w: GET /characters: %w", ErrDecode, err)
	}
	return out, nil
}

// GetCharacter fetches GET {base}/characters/{id}.
func (c *HTTPClient) GetCharacter(ctx context.Context, id character.ID) (GetOutput, error) {
	path := "/characters/" + url.PathEscape(id.String())
	body, err := c.get(ctx, "characterapi.get", path, nil)
	if err != nil {
		return GetOutput{}, err
	}
	record, found, err := decodeCharacter(body)
	if err != nil {
		return GetOutput{}, fmt.Errorf("%w: GET %s: %w", ErrDecode, path, err)
	}
	if !found {
		return GetOutput{}, fmt.Errorf("GET %s: null body: %w", path, ErrNotFound)
	}
	return GetOutput{Character: record}, nil
}

func (c *HTTPClient) get(ctx context.Context, spanName string, path string, query url.Values) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	body, err := c.do(ctx, span, path, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return body, nil
}

func (c *HTTPClient) do(ctx context.Context, span trace.Span, path string, query url.Values) ([]byte, error) {
	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if requestID := httpx.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(httpx.RequestIDHeader, requestID)
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrUnavailable, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read GET %s: %w", ErrUnavailable, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeErrorBody(body)
		return nil, &StatusError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Code:       strings.TrimSpace(apiErr.Code),
			Message:    strings.TrimSpace(apiErr.Error),
		}
	}
	return body, nil
}
