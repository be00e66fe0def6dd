// Package clients provides reusable HTTP clients for the internal cabreaich
// services (integration, speech, qlogic). All clients share BaseClient,
// which supports an injected http.Client for connection pooling, optional
// client-side rate limiting, and a common mapping of failures onto
// errs.APIError.
package clients
