package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Canonical structured field names. Services must use these keys so logs
// from different containers can be correlated.
const (
	FieldComponent  = "component"
	FieldSessionID  = "session_id"
	FieldChildID    = "child_id"
	FieldDurationMS = "duration_ms"
)

var setupOnce sync.Once

// setup fixes global zerolog formatting: UTC timestamps with millisecond
// precision and a trailing Z, matching the wire format of the shared models.
func setup() {
	setupOnce.Do(func() {
		zerolog.TimeFieldFormat = "2006-01-02T15:04:05.000Z"
		zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	})
}

// ParseLevel maps a settings log level string to a zerolog level. Unknown
// values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a JSON logger for the named component, writing to stderr.
func New(component string, level string) zerolog.Logger {
	return NewWithWriter(component, level, os.Stderr)
}

// NewWithWriter returns a JSON logger for the named component writing to w.
func NewWithWriter(component string, level string, w io.Writer) zerolog.Logger {
	setup()
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str(FieldComponent, component).
		Logger()
}

// NewConsole returns a human-readable logger for local development.
func NewConsole(component string, level string) zerolog.Logger {
	setup()
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str(FieldComponent, component).
		Logger()
}
