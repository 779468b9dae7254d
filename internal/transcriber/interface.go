package transcriber

import "context"

// Transcriber converts one audio recording to text
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) Outcome
}
