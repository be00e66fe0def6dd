// Package flags defines the shared flag vocabulary exchanged between the
// cabreaich containers. Typed string constants keep the producing and
// consuming services in agreement and prevent typos on the wire.
package flags

// VADFlag marks voice-activity-detection and speech timing findings,
// generated by the speech container.
type VADFlag string

const (
	// FalseStart indicates speech started but was too short.
	FalseStart VADFlag = "false_start"
	// SyllableGap indicates a potentially disruptive pause within speech.
	SyllableGap VADFlag = "syllable_gap"
)

func (f VADFlag) String() string { return string(f) }

// EngagementFlag marks findings about the user's engagement level.
type EngagementFlag string

const (
	LowEngagement EngagementFlag = "low_engagement"
)

func (f EngagementFlag) String() string { return string(f) }

// QualityFlag marks findings about the quality of the speech input.
type QualityFlag string

const (
	LowConfidenceSTT QualityFlag = "low_confidence_stt"
	BackgroundNoise  QualityFlag = "background_noise"
)

func (f QualityFlag) String() string { return string(f) }

// EmotionFlag marks detected emotions.
type EmotionFlag string

const (
	Frustrated EmotionFlag = "frustrated"
	Happy      EmotionFlag = "happy"
	Neutral    EmotionFlag = "neutral"
)

func (f EmotionFlag) String() string { return string(f) }

// stringer is satisfied by every flag type in this package.
type stringer interface{ String() string }

// Has reports whether the flag list received from another container
// contains the given flag.
func Has[F stringer](received []string, flag F) bool {
	want := flag.String()
	for _, f := range received {
		if f == want {
			return true
		}
	}
	return false
}
