package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/reaich/cabreaich-common/errs"
)

const (
	// DefaultTimeout bounds requests when no custom http.Client is injected.
	DefaultTimeout = 10 * time.Second

	// bodyExcerptLimit caps how much of an error response body ends up in
	// error messages and logs.
	bodyExcerptLimit = 200
)

// BaseClient is the shared core of the service clients.
type BaseClient struct {
	baseURL    string
	httpClient *http.Client
	injected   bool
	timeout    time.Duration
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// Option configures a BaseClient.
type Option func(*BaseClient)

// WithHTTPClient injects a shared http.Client instance. The caller owns its
// lifecycle; connection pooling is shared across all clients using it.
func WithHTTPClient(c *http.Client) Option {
	return func(b *BaseClient) {
		b.httpClient = c
		b.injected = true
	}
}

// WithTimeout sets the request timeout. Ignored when a custom http.Client
// is injected; the injected client's timeout wins.
func WithTimeout(d time.Duration) Option {
	return func(b *BaseClient) {
		b.timeout = d
	}
}

// WithRateLimit applies a client-side request rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(b *BaseClient) {
		b.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithLogger sets the structured logger used for request failures.
func WithLogger(log zerolog.Logger) Option {
	return func(b *BaseClient) {
		b.log = log
	}
}

// NewBaseClient creates a client for the service at baseURL.
func NewBaseClient(baseURL string, opts ...Option) *BaseClient {
	b := &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if !b.injected {
		b.httpClient = &http.Client{Timeout: b.timeout}
	}
	return b
}

// BaseURL returns the configured service base URL.
func (b *BaseClient) BaseURL() string { return b.baseURL }

// postJSON sends a POST with an optional JSON body and returns the raw
// response body. Non-2xx statuses and transport failures are mapped onto
// *errs.APIError.
func (b *BaseClient) postJSON(ctx context.Context, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return b.do(req)
}

// Ping issues a GET against the service base URL. Any HTTP response counts
// as reachable; only transport-level failures are errors.
func (b *BaseClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return errs.WrapAPIError(err, 0, "rate limiter interrupted")
		}
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errs.WrapAPIError(err, 0, fmt.Sprintf("service at %s unreachable", b.baseURL))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do executes the request and normalizes failures.
func (b *BaseClient) do(req *http.Request) ([]byte, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(req.Context()); err != nil {
			return nil, errs.WrapAPIError(err, 0, "rate limiter interrupted")
		}
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		b.log.Error().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return nil, errs.WrapAPIError(err, 0, fmt.Sprintf("request to %s failed", req.URL))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.WrapAPIError(err, resp.StatusCode, "reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := bodyExcerpt(raw)
		b.log.Error().
			Int("status", resp.StatusCode).
			Str("url", req.URL.String()).
			Str("body", excerpt).
			Msg("request rejected")
		return nil, errs.NewAPIError(
			fmt.Sprintf("%s %s: %s", req.Method, req.URL.Path, excerpt),
			resp.StatusCode,
		)
	}

	return raw, nil
}

// decode unmarshals a response body, mapping failures onto APIError so
// callers see one error taxonomy.
func decode(raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.WrapAPIError(err, 0, "decoding response body")
	}
	return nil
}

func bodyExcerpt(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > bodyExcerptLimit {
		s = s[:bodyExcerptLimit]
	}
	if s == "" {
		s = "(empty body)"
	}
	return s
}
