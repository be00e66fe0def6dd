package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/reaich/cabreaich-common/textutil"
)

// Timestamp is a time value that marshals in the shared wire format:
// UTC ISO 8601 with millisecond precision and a trailing Z.
type Timestamp time.Time

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time { return time.Time(t) }

// IsZero reports whether the timestamp is the zero time.
func (t Timestamp) IsZero() bool { return time.Time(t).IsZero() }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + textutil.FormatTimestamp(time.Time(t)) + `"`), nil
}

// UnmarshalJSON accepts RFC 3339 timestamps with or without fractional
// seconds; producers are not all equally precise.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("parsing timestamp %q: not RFC 3339", s)
}
