package models

import (
	"github.com/google/uuid"
)

// VADEventType identifies the VAD events emitted by the speech container.
type VADEventType string

const (
	VADSpeechStart VADEventType = "vad_speech_start"
	VADSpeechEnd   VADEventType = "vad_speech_end"
)

// Valid reports whether the value is a defined VAD event type.
func (t VADEventType) Valid() bool {
	return t == VADSpeechStart || t == VADSpeechEnd
}

// PhonemeData is phoneme-level detail from pronunciation assessment.
type PhonemeData struct {
	// Phoneme is the phoneme identifier, e.g. "er".
	Phoneme string `json:"phoneme"`
	// Score is the accuracy score for the phoneme (0-100).
	Score float64 `json:"score"`
}

// WordAssessmentData is word-level pronunciation assessment detail.
type WordAssessmentData struct {
	Word     string `json:"word"`
	Accuracy float64 `json:"accuracy"`
	// ErrorType is "None", "Mispronunciation", "Omission", etc.
	ErrorType string        `json:"errorType"`
	Phonemes  []PhonemeData `json:"phonemes,omitempty"`
}

// PronunciationAnalysisResult is the structured outcome of pronunciation
// analysis for one utterance.
type PronunciationAnalysisResult struct {
	RecognizedText    string               `json:"recognizedText"`
	OverallScore      float64              `json:"overallScore"`
	PronunciationScore float64             `json:"pronunciationScore"`
	CompletenessScore float64              `json:"completenessScore"`
	FluencyScore      float64              `json:"fluencyScore"`
	Words             []WordAssessmentData `json:"words,omitempty"`
	// Error carries a message when the analysis itself failed.
	Error string `json:"error,omitempty"`
}

// VADEventData is sent from the speech container to the integration
// container when voice activity starts or ends.
type VADEventData struct {
	EventType VADEventType `json:"eventType"`
	SessionID uuid.UUID    `json:"session_id"`
	Timestamp Timestamp    `json:"timestamp"`
}

// VADTimingFlagsData carries generated VAD timing flags (e.g. from the
// integration container to qlogic).
type VADTimingFlagsData struct {
	SessionID uuid.UUID `json:"session_id"`
	// Flags holds flag strings from the flags package, e.g. "false_start".
	Flags     []string  `json:"flags"`
	Timestamp Timestamp `json:"timestamp"`
}

// DefaultModuleContext identifies the speech turn handler as the caller.
const DefaultModuleContext = "speech_handler"

// QLogicTurnInput is sent from the speech container to qlogic for routing.
type QLogicTurnInput struct {
	ChildID        uuid.UUID                    `json:"child_id"`
	SessionID      uuid.UUID                    `json:"session_id"`
	TargetPhrase   string                       `json:"targetPhrase,omitempty"`
	STTText        string                       `json:"sttText,omitempty"`
	AnalysisResult *PronunciationAnalysisResult `json:"analysisResult,omitempty"`
	ModuleContext  string                       `json:"moduleContext"`
	Timestamp      Timestamp                    `json:"timestamp"`
}

// NewQLogicTurnInput builds a turn input with the default module context and
// a current timestamp.
func NewQLogicTurnInput(childID, sessionID uuid.UUID) QLogicTurnInput {
	return QLogicTurnInput{
		ChildID:       childID,
		SessionID:     sessionID,
		ModuleContext: DefaultModuleContext,
		Timestamp:     Now(),
	}
}

// QLogicResponse is the routing decision received from qlogic.
type QLogicResponse struct {
	// Type is the action qlogic decided on: "prompt", "feedback", "game", ...
	Type string `json:"type"`
	// Payload is the data needed to execute the action.
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// GuardianInput captures input provided by a guardian about a child.
type GuardianInput struct {
	ChildID      uuid.UUID              `json:"childId"`
	SourceID     string                 `json:"sourceId"`
	GuardianName string                 `json:"guardianName"`
	Notes        string                 `json:"notes,omitempty"`
	Timestamp    Timestamp              `json:"timestamp"`
	Details      map[string]interface{} `json:"details,omitempty"`
}
