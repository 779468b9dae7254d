package processor

import (
	"context"
	"time"
)

// Processor runs the pipeline for at most one pending record
type Processor interface {
	Run(ctx context.Context) (Report, error)
}

// Recorder receives the outcome of every run
type Recorder interface {
	RunFinished(outcome string, d time.Duration)
}
