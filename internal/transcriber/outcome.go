package transcriber

import "fmt"

// FailureKind classifies why a transcription produced no text
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureRecognition: the service answered but did not recognize anything usable
	FailureRecognition
	// FailureException: the call itself failed (network, auth, bad payload)
	FailureException
)

// Markers prefix the error text of each failure kind
const (
	RecognitionFailureMarker  = "recognition failure"
	ProcessingExceptionMarker = "processing exception"
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureRecognition:
		return RecognitionFailureMarker
	case FailureException:
		return ProcessingExceptionMarker
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Outcome is either a transcript (Kind == FailureNone) or a classified failure
type Outcome struct {
	Text   string
	Kind   FailureKind
	Reason string
}

func Success(text string) Outcome {
	return Outcome{Text: text}
}

func Failure(kind FailureKind, format string, args ...interface{}) Outcome {
	return Outcome{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func (o Outcome) Failed() bool {
	return o.Kind != FailureNone
}

// Err returns nil for a successful outcome
func (o Outcome) Err() error {
	if !o.Failed() {
		return nil
	}
	return &TranscriptionError{Kind: o.Kind, Reason: o.Reason}
}

// TranscriptionError is the terminal error of an aborted run
type TranscriptionError struct {
	Kind   FailureKind
	Reason string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}
