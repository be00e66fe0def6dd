package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"with status", NewAPIError("upstream refused", 502), "[status 502] upstream refused"},
		{"without status", NewAPIError("connection reset", 0), "connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := WrapAPIError(cause, 0, "posting event")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestAPIError_WithFallback(t *testing.T) {
	base := NewAPIError("qlogic unavailable", 503)
	withFb := base.WithFallback("Let's try that again in a moment.")
	if withFb.Fallback != "Let's try that again in a moment." {
		t.Errorf("Fallback = %q", withFb.Fallback)
	}
	if base.Fallback != "" {
		t.Error("WithFallback mutated the original error")
	}
}

func TestAsAPIError(t *testing.T) {
	inner := NewAPIError("not found", 404)
	wrapped := fmt.Errorf("routing turn: %w", inner)

	got, ok := AsAPIError(wrapped)
	if !ok {
		t.Fatal("AsAPIError = false, want true")
	}
	if got.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", got.StatusCode)
	}

	if _, ok := AsAPIError(errors.New("plain")); ok {
		t.Error("AsAPIError(plain) = true, want false")
	}
}

func TestAsValidationError(t *testing.T) {
	inner := NewValidationError("invalid settings", map[string]string{"log_level": "unknown"})
	wrapped := fmt.Errorf("loading config: %w", inner)

	got, ok := AsValidationError(wrapped)
	if !ok {
		t.Fatal("AsValidationError = false, want true")
	}
	if got.Details["log_level"] != "unknown" {
		t.Errorf("Details = %v", got.Details)
	}
}
