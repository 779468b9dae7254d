package summarizer

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/nlp"
)

const (
	DefaultMaxSentences = 3
	DefaultMaxKeywords  = 5
)

type implSummarizer struct {
	pipeline     nlp.Pipeline
	logger       logger.Logger
	maxSentences int
	maxKeywords  int
}

// New creates a Summarizer over an already loaded NLP pipeline.
// Non-positive limits fall back to the defaults.
func New(pipeline nlp.Pipeline, log logger.Logger, maxSentences, maxKeywords int) Summarizer {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &implSummarizer{
		pipeline:     pipeline,
		logger:       log,
		maxSentences: maxSentences,
		maxKeywords:  maxKeywords,
	}
}
