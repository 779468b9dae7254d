package probe

import "context"

// DefaultSampleRate is used whenever the sample rate cannot be detected
const DefaultSampleRate = 16000

// Prober determines technical properties of an audio stream without decoding it
type Prober interface {
	// DetectSampleRate never fails; problems resolve to DefaultSampleRate
	DetectSampleRate(ctx context.Context, audioURL string) int
}
