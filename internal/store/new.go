package store

import (
	"net/http"
	"time"

	"github.com/jomei/notionapi"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

// Options names the database and the properties the pipeline reads and writes
type Options struct {
	APIKey             string
	DatabaseID         string
	AudioProperty      string
	TranscriptProperty string
	SummaryProperty    string
	Timeout            time.Duration
	HTTPClient         *http.Client // overrides Timeout when set
}

type implStore struct {
	client *notionapi.Client
	opts   Options
	logger logger.Logger
}

// New creates a Store backed by a Notion database
func New(opts Options, log logger.Logger) Store {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	// WithRetry(1): a 429 is returned on the first attempt instead of being retried
	client := notionapi.NewClient(
		notionapi.Token(opts.APIKey),
		notionapi.WithHTTPClient(httpClient),
		notionapi.WithRetry(1),
	)
	return &implStore{
		client: client,
		opts:   opts,
		logger: log,
	}
}
