package store

import (
	"context"
	"errors"
)

// ErrNoAudio is returned when a selected record has no usable audio URL
var ErrNoAudio = errors.New("record has no audio file URL")

// Record is one entry of the recordings database
type Record struct {
	ID         string
	AudioURL   string
	Transcript string
	Summary    string
}

// Eligible reports whether the record still needs a transcript
func (r Record) Eligible() bool {
	return r.AudioURL != "" && r.Transcript == ""
}

// Source selects the next record to process
type Source interface {
	// FetchNextPending returns nil, nil when nothing is pending
	FetchNextPending(ctx context.Context) (*Record, error)
}

// Sink persists processing results on a record
type Sink interface {
	WriteResults(ctx context.Context, recordID, transcript, summary string) error
}

// Store is both ends of the record store
type Store interface {
	Source
	Sink
}
