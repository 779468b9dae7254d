package summarizer

import (
	"context"
	"strings"
)

// Summarizer derives a short extractive summary and keywords from a transcript
type Summarizer interface {
	Summarize(ctx context.Context, text string) (Result, error)
}

type Result struct {
	Summary  string
	Keywords []string
}

// KeywordString renders keywords the way they are shown to people
func (r Result) KeywordString() string {
	return strings.Join(r.Keywords, ", ")
}
