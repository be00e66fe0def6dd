package updater

import (
	"net/http"
	"time"
)

// Release is the subset of a GitHub release the checker cares about.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Checker performs release lookups for the running binary.
type Checker struct {
	currentVersion string
	httpClient     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// New creates a Checker for the given current version.
func New(currentVersion string, opts ...Option) *Checker {
	ch := &Checker{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}
