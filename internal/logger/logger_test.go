package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "info", Output: &buf})

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestRunIDField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "info", Format: "json", Output: &buf})

	ctx := WithRunID(context.Background(), "run-42")
	log.Info(ctx, "hello %s", "world")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if line["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want run-42", line["run_id"])
	}
	if line["msg"] != "hello world" {
		t.Errorf("msg = %v, want hello world", line["msg"])
	}
}

func TestRunIDMissing(t *testing.T) {
	if id := RunID(context.Background()); id != "" {
		t.Errorf("RunID() = %q, want empty", id)
	}
}
