package transcriber

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/probe"
)

// Options configures the speech-to-text client
type Options struct {
	Endpoint   string
	APIKey     string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client // overrides Timeout when set
}

type implTranscriber struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	prober   probe.Prober
	logger   logger.Logger
}

// New creates a Transcriber backed by the DashScope recognition API
func New(opts Options, prober probe.Prober, log logger.Logger) Transcriber {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &implTranscriber{
		endpoint: opts.Endpoint,
		apiKey:   opts.APIKey,
		model:    opts.Model,
		client:   client,
		prober:   prober,
		logger:   log,
	}
}
