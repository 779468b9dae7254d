package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/nlp"
	"github.com/nguyentantai21042004/voice-notes/internal/probe"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/store"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

// Exit codes observed by the scheduler
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

// processorFactory builds the pipeline once configuration is known
type processorFactory func(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (processor.Processor, error)

func main() {
	// Stop in-flight calls on Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, newProcessor)
	stop()
	os.Exit(code)
}

// run executes one pipeline run and returns the process exit code.
// All progress and error messages go to out.
func run(ctx context.Context, args []string, out io.Writer, build processorFactory) int {
	flags := flag.NewFlagSet("pipeline", flag.ContinueOnError)
	flags.SetOutput(out)
	configPath := flags.String("config", config.DefaultPath, "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(out, "Failed to load config: %v\n", err)
		return exitConfig
	}

	// Initialize logger
	log := logger.NewWithOptions(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: out})
	ctx = logger.WithRunID(ctx, uuid.NewString())
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Notes Transcription")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Database: %s", cfg.Notion.DatabaseID)
	log.Info(ctx, "Model: %s", cfg.DashScope.Model)

	m := metrics.New()
	defer pushMetrics(ctx, cfg, m, log)

	proc, err := build(cfg, log, m)
	if err != nil {
		log.Error(ctx, "Failed to initialize pipeline: %v", err)
		return exitFailed
	}

	// the processor logs the terminal error of a failed run
	report, err := proc.Run(ctx)
	if err != nil {
		return exitCode(err)
	}

	if !report.NoOp() {
		log.Info(ctx, "========================================")
		log.Info(ctx, "Processing completed successfully!")
		log.Info(ctx, "Record: %s", report.RecordID)
		log.Info(ctx, "Summary: %s", report.Summary)
		log.Info(ctx, "Keywords: %s", strings.Join(report.Keywords, ", "))
		log.Info(ctx, "Processing time: %s", report.Duration)
		log.Info(ctx, "========================================")
	}

	return exitOK
}

// exitCode maps a run error to the code the scheduler sees
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrMissingCredential):
		return exitConfig
	default:
		return exitFailed
	}
}

// newProcessor wires the production clients
func newProcessor(cfg *config.Config, log logger.Logger, m *metrics.Metrics) (processor.Processor, error) {
	pipeline, err := nlp.NewGSE()
	if err != nil {
		return nil, fmt.Errorf("load NLP pipeline: %w", err)
	}

	exec := executor.New()
	prober := probe.New(cfg.FFprobe.BinaryPath, exec, log, m.ProbeFallback)
	tr := transcriber.New(transcriber.Options{
		Endpoint: cfg.DashScope.Endpoint,
		APIKey:   cfg.Credentials.DashScopeAPIKey,
		Model:    cfg.DashScope.Model,
		Timeout:  cfg.DashScope.Timeout,
	}, prober, log)
	sum := summarizer.New(pipeline, log, cfg.Summary.MaxSentences, cfg.Summary.MaxKeywords)
	st := store.New(store.Options{
		APIKey:             cfg.Credentials.NotionAPIKey,
		DatabaseID:         cfg.Notion.DatabaseID,
		AudioProperty:      cfg.Notion.AudioProperty,
		TranscriptProperty: cfg.Notion.TranscriptProperty,
		SummaryProperty:    cfg.Notion.SummaryProperty,
		Timeout:            cfg.Notion.Timeout,
	}, log)

	return processor.New(st, st, tr, sum, m, log), nil
}

// pushMetrics is best effort; a failed push never changes the exit code
func pushMetrics(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log logger.Logger) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}
	if err := m.Push(context.WithoutCancel(ctx), cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
		log.Warn(ctx, "Failed to push metrics: %v", err)
		return
	}
	log.Debug(ctx, "Metrics pushed to %s", cfg.Metrics.PushgatewayURL)
}
