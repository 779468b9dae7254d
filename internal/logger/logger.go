package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

type implLogger struct {
	logger *logrus.Logger
}

// New creates a new Logger instance writing text logs to stdout
func New(level string) Logger {
	return NewWithOptions(Options{Level: level})
}

// Options controls the logrus backend
type Options struct {
	Level  string
	Format string // "text" (default) or "json"
	Output io.Writer
}

// NewWithOptions creates a Logger with an explicit format and output
func NewWithOptions(opts Options) Logger {
	base := logrus.New()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	base.SetOutput(opts.Output)

	if strings.ToLower(opts.Format) == "json" {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	base.SetLevel(parseLevel(opts.Level))

	return &implLogger{logger: base}
}

// parseLevel maps a config level to logrus, defaulting to info
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *implLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(l.logger)
	if id := RunID(ctx); id != "" {
		e = e.WithField("run_id", id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Errorf(msg, args...)
}

// WithRunID returns a context that tags every log line with the run id
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunID returns the run id stored in ctx, or "" if none
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// Nop returns a Logger that discards everything. Handy in tests.
func Nop() Logger {
	return NewWithOptions(Options{Level: "error", Output: io.Discard})
}
