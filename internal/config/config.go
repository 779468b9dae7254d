package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingCredential is returned by Validate when an API key is absent
var ErrMissingCredential = errors.New("missing credential")

type Config struct {
	Notion      NotionConfig      `yaml:"notion"`
	DashScope   DashScopeConfig   `yaml:"dashscope"`
	FFprobe     FFprobeConfig     `yaml:"ffprobe"`
	Summary     SummaryConfig     `yaml:"summary"`
	Logging     LoggingConfig     `yaml:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Credentials CredentialsConfig `yaml:"-"`
}

type NotionConfig struct {
	DatabaseID         string        `yaml:"database_id" env:"NOTION_DATABASE_ID"`
	AudioProperty      string        `yaml:"audio_property"`
	TranscriptProperty string        `yaml:"transcript_property"`
	SummaryProperty    string        `yaml:"summary_property"`
	Timeout            time.Duration `yaml:"timeout"`
}

type DashScopeConfig struct {
	Endpoint string        `yaml:"endpoint" env:"DASHSCOPE_ENDPOINT"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

type FFprobeConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
	MaxKeywords  int `yaml:"max_keywords"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	PushgatewayURL string `yaml:"pushgateway_url" env:"METRICS_PUSHGATEWAY_URL"`
	Job            string `yaml:"job"`
}

// CredentialsConfig is never read from the YAML file, only from the environment
type CredentialsConfig struct {
	NotionAPIKey    string `env:"NOTION_API_KEY"`
	DashScopeAPIKey string `env:"DASHSCOPE_API_KEY"`
}

func (c *Config) Validate() error {
	if c.Credentials.NotionAPIKey == "" {
		return fmt.Errorf("%w: NOTION_API_KEY is required", ErrMissingCredential)
	}
	if c.Credentials.DashScopeAPIKey == "" {
		return fmt.Errorf("%w: DASHSCOPE_API_KEY is required", ErrMissingCredential)
	}
	if c.Notion.DatabaseID == "" {
		return fmt.Errorf("notion.database_id is required")
	}

	if c.Notion.AudioProperty == "" {
		c.Notion.AudioProperty = "Audio File"
	}
	if c.Notion.TranscriptProperty == "" {
		c.Notion.TranscriptProperty = "Transcript"
	}
	if c.Notion.SummaryProperty == "" {
		c.Notion.SummaryProperty = "Summary"
	}
	if c.Notion.Timeout == 0 {
		c.Notion.Timeout = 30 * time.Second
	}
	if c.DashScope.Endpoint == "" {
		c.DashScope.Endpoint = "https://dashscope.aliyuncs.com/api/v1/services/audio/asr/recognition"
	}
	if c.DashScope.Model == "" {
		c.DashScope.Model = "paraformer-v2"
	}
	if c.DashScope.Timeout == 0 {
		c.DashScope.Timeout = 5 * time.Minute
	}
	if c.FFprobe.BinaryPath == "" {
		c.FFprobe.BinaryPath = "ffprobe"
	}
	if c.Summary.MaxSentences == 0 {
		c.Summary.MaxSentences = 3
	}
	if c.Summary.MaxKeywords == 0 {
		c.Summary.MaxKeywords = 5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Metrics.Job == "" {
		c.Metrics.Job = "voice-notes"
	}

	return nil
}
