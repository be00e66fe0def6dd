package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("speech", "info", &buf)
	log.Info().Str(FieldSessionID, "abc").Msg("turn started")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry[FieldComponent] != "speech" {
		t.Errorf("component = %v, want %q", entry[FieldComponent], "speech")
	}
	if entry[FieldSessionID] != "abc" {
		t.Errorf("session_id = %v, want %q", entry[FieldSessionID], "abc")
	}
	if entry["message"] != "turn started" {
		t.Errorf("message = %v", entry["message"])
	}

	ts, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("time field missing: %v", entry)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000Z", ts); err != nil {
		t.Errorf("timestamp %q not in millisecond UTC format: %v", ts, err)
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("speech", "warn", &buf)
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info line emitted at warn level: %s", buf.String())
	}
	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Error("warn line not emitted at warn level")
	}
}
