package processor

import (
	"fmt"
	"time"
)

// State is a step of a pipeline run
type State int

const (
	StateIdle State = iota
	StateSelecting
	StateTranscribing // probing + transcription
	StateSummarizing
	StateWriting
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateTranscribing:
		return "transcribing"
	case StateSummarizing:
		return "summarizing"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Report describes how far a run got and what it produced. On a fatal
// error State is the step that failed.
type Report struct {
	State      State
	RecordID   string
	AudioURL   string
	Transcript string
	Summary    string
	Keywords   []string
	Duration   time.Duration
}

// NoOp reports whether the run found nothing to process
func (r Report) NoOp() bool {
	return r.State == StateDone && r.RecordID == ""
}
