// Package errs defines the shared error taxonomy for the cabreaich
// services: APIError for failures talking to internal or external services,
// and ValidationError for data validation failures. Both compose with the
// standard errors.Is/As machinery.
package errs
