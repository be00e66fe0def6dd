// Package constants centralizes the immutable values shared across the
// cabreaich containers. These are not configurable at runtime.
package constants

import "time"

// Pronunciation scoring bounds (Azure pronunciation assessment).
const (
	MinValidScore float64 = 0.0
	MaxValidScore float64 = 100.0
)

// Audio buffering.
const (
	// DefaultAudioRingBufferChunks caps the audio chunks held in the shared
	// ring buffer.
	DefaultAudioRingBufferChunks = 100
	// PrebufferMaxFrames is how many frames to buffer before flushing to STT.
	PrebufferMaxFrames = 20
	// QueuePutTimeout bounds audio capture enqueue operations.
	QueuePutTimeout = 1 * time.Second
	// QueueGetTimeout bounds pull-stream read operations.
	QueueGetTimeout = 1 * time.Second
	// InitialDataWait is how long to wait for the first frame after
	// enabling STT.
	InitialDataWait = 2 * time.Second
)

// VAD timing thresholds.
const (
	MinSpeechDuration  = 300 * time.Millisecond
	MaxSilenceDuration = 2000 * time.Millisecond
	GapThreshold       = 150 * time.Millisecond
)

// Energy-based detection.
const (
	// EBDSilenceThresholdDB is the dBFS threshold below which a frame
	// counts as silence.
	EBDSilenceThresholdDB float64 = -40.0
	EBDMaxSilentFrames            = 20
)

// Fallback log file handling.
const (
	FallbackLogPath    = "/app/logs/speech_sdk.log"
	LogRotationBytes   = 2_000_000
	LogRotationBackups = 3
)

// Log record types persisted to Cosmos and file logs.
const (
	LogTypeTurn  = "turn"
	LogTypeError = "error"
)

// PromptMode selects how a turn prompt is generated.
type PromptMode string

const (
	ModeScored PromptMode = "scored"
	ModeOpen   PromptMode = "open"
	ModeChat   PromptMode = "chat"
	ModeAuto   PromptMode = "auto"
)

// Valid reports whether the mode is one of the defined prompt modes.
func (m PromptMode) Valid() bool {
	switch m {
	case ModeScored, ModeOpen, ModeChat, ModeAuto:
		return true
	}
	return false
}
