package flags

import "testing"

func TestHas(t *testing.T) {
	received := []string{"false_start", "low_engagement"}

	if !Has(received, FalseStart) {
		t.Error("Has(FalseStart) = false, want true")
	}
	if !Has(received, LowEngagement) {
		t.Error("Has(LowEngagement) = false, want true")
	}
	if Has(received, SyllableGap) {
		t.Error("Has(SyllableGap) = true, want false")
	}
	if Has(nil, BackgroundNoise) {
		t.Error("Has(nil, ...) = true, want false")
	}
}

func TestFlagValues(t *testing.T) {
	tests := []struct {
		flag stringer
		want string
	}{
		{FalseStart, "false_start"},
		{SyllableGap, "syllable_gap"},
		{LowEngagement, "low_engagement"},
		{LowConfidenceSTT, "low_confidence_stt"},
		{BackgroundNoise, "background_noise"},
		{Frustrated, "frustrated"},
		{Happy, "happy"},
		{Neutral, "neutral"},
	}
	for _, tt := range tests {
		if got := tt.flag.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
