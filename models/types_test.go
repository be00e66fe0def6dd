package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTimestamp_MarshalWireFormat(t *testing.T) {
	ts := Timestamp(time.Date(2025, 4, 30, 14, 4, 5, 123_000_000, time.UTC))
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `"2025-04-30T14:04:05.123Z"` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestTimestamp_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"milliseconds", `"2025-04-30T14:04:05.123Z"`},
		{"no fraction", `"2025-04-30T14:04:05Z"`},
		{"offset", `"2025-04-30T15:04:05.123+01:00"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
			}
			if ts.Time().UTC().Hour() != 14 {
				t.Errorf("hour = %d, want 14 (UTC)", ts.Time().UTC().Hour())
			}
		})
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("Unmarshal(yesterday) = nil error, want failure")
	}
}

func TestVADEventData_WireAliases(t *testing.T) {
	ev := VADEventData{
		EventType: VADSpeechStart,
		SessionID: uuid.MustParse("2b7df291-9d3c-4f25-a06a-7ec65da08f3d"),
		Timestamp: Timestamp(time.Date(2025, 4, 30, 14, 0, 0, 0, time.UTC)),
	}
	out, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(out)
	for _, key := range []string{`"eventType":"vad_speech_start"`, `"session_id"`, `"timestamp"`} {
		if !strings.Contains(s, key) {
			t.Errorf("marshaled event missing %s: %s", key, s)
		}
	}
}

func TestVADEventType_Valid(t *testing.T) {
	if !VADSpeechStart.Valid() || !VADSpeechEnd.Valid() {
		t.Error("defined event types reported invalid")
	}
	if VADEventType("vad_pause").Valid() {
		t.Error("undefined event type reported valid")
	}
}

func TestNewQLogicTurnInput(t *testing.T) {
	child, session := uuid.New(), uuid.New()
	in := NewQLogicTurnInput(child, session)
	if in.ModuleContext != DefaultModuleContext {
		t.Errorf("ModuleContext = %q, want %q", in.ModuleContext, DefaultModuleContext)
	}
	if in.ChildID != child || in.SessionID != session {
		t.Error("ids not carried over")
	}
	if in.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestQLogicTurnInput_WireAliases(t *testing.T) {
	in := NewQLogicTurnInput(uuid.New(), uuid.New())
	in.TargetPhrase = "red balloon"
	in.STTText = "red balloon"
	in.AnalysisResult = &PronunciationAnalysisResult{
		RecognizedText: "red balloon",
		OverallScore:   91.5,
	}

	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(out)
	for _, key := range []string{`"child_id"`, `"targetPhrase"`, `"sttText"`, `"analysisResult"`, `"recognizedText"`, `"overallScore"`, `"moduleContext"`} {
		if !strings.Contains(s, key) {
			t.Errorf("marshaled turn input missing %s: %s", key, s)
		}
	}
}

func TestGuardianInput_RoundTrip(t *testing.T) {
	in := GuardianInput{
		ChildID:      uuid.MustParse("2b7df291-9d3c-4f25-a06a-7ec65da08f3d"),
		SourceID:     "mobile-app",
		GuardianName: "Alex",
		Notes:        "prefers shorter sessions",
		Timestamp:    Now(),
		Details:      map[string]interface{}{"locale": "de-CH"},
	}
	out, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var back GuardianInput
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back.ChildID != in.ChildID || back.SourceID != in.SourceID || back.GuardianName != in.GuardianName {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if !strings.Contains(string(out), `"childId"`) {
		t.Errorf("marshaled guardian input missing childId alias: %s", out)
	}
}
