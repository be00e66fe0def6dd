package errs

import (
	"errors"
	"fmt"
)

// APIError is raised for errors interacting with external APIs or internal
// services.
type APIError struct {
	Message string
	// StatusCode is the HTTP status associated with the error; 0 means the
	// failure happened below the HTTP layer (connection, timeout).
	StatusCode int
	// Fallback is an optional user-friendly message to be spoken to the
	// child when this error occurs.
	Fallback string

	cause error
}

// NewAPIError creates an APIError with an optional status code.
func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{Message: message, StatusCode: statusCode}
}

// WrapAPIError creates an APIError that wraps an underlying cause.
func WrapAPIError(cause error, statusCode int, message string) *APIError {
	return &APIError{Message: message, StatusCode: statusCode, cause: cause}
}

// WithFallback returns a copy carrying a user-facing fallback message.
func (e *APIError) WithFallback(fallback string) *APIError {
	cp := *e
	cp.Fallback = fallback
	return &cp
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[status %d] %s", e.StatusCode, e.Message)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

// ValidationError is raised for data validation failures. Details maps
// field names to the reason each failed.
type ValidationError struct {
	Message string
	Details map[string]string

	cause error
}

// NewValidationError creates a ValidationError with per-field details.
func NewValidationError(message string, details map[string]string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// WrapValidationError creates a ValidationError wrapping an underlying cause.
func WrapValidationError(cause error, message string) *ValidationError {
	return &ValidationError{Message: message, cause: cause}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.cause }

// AsAPIError unwraps err looking for an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsValidationError unwraps err looking for a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}
