// Package textutil provides small text and timestamp helpers shared across
// the cabreaich services.
package textutil

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Clean strips leading/trailing whitespace and collapses interior runs of
// whitespace to a single space. Punctuation is preserved.
func Clean(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// TimestampFormat is the shared wire format for timestamps: UTC ISO 8601
// with millisecond precision and a trailing Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in the shared wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// NewID returns a fresh version 4 UUID.
func NewID() uuid.UUID {
	return uuid.New()
}
