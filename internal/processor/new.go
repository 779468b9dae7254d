package processor

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
)

type implProcessor struct {
	source      store.Source
	sink        store.Sink
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	recorder    Recorder
	logger      logger.Logger
}

// New creates a new Processor instance. recorder may be nil.
func New(source store.Source, sink store.Sink, tr transcriber.Transcriber, sum summarizer.Summarizer, recorder Recorder, log logger.Logger) Processor {
	return &implProcessor{
		source:      source,
		sink:        sink,
		transcriber: tr,
		summarizer:  sum,
		recorder:    recorder,
		logger:      log,
	}
}
