package probe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DetectSampleRate asks ffprobe for the sample rate of the first audio stream
func (p *implProber) DetectSampleRate(ctx context.Context, audioURL string) int {
	// -select_streams a:0: first audio stream only
	// nokey=1: bare value, one per line
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioURL,
	}

	out, err := p.executor.Execute(ctx, p.binary, args...)
	if err != nil {
		return p.fallback(ctx, fmt.Errorf("ffprobe: %w", err))
	}

	rate, err := parseSampleRate(out)
	if err != nil {
		return p.fallback(ctx, err)
	}

	p.logger.Info(ctx, "Detected sample rate: %dHz", rate)
	return rate
}

func (p *implProber) fallback(ctx context.Context, cause error) int {
	p.logger.Warn(ctx, "Sample rate detection failed, using default %dHz: %v", DefaultSampleRate, cause)
	if p.onFallback != nil {
		p.onFallback()
	}
	return DefaultSampleRate
}

// parseSampleRate reads the first non-empty line of ffprobe output
func parseSampleRate(out string) (int, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rate, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("unparsable sample rate %q", line)
		}
		if rate <= 0 {
			return 0, fmt.Errorf("non-positive sample rate %d", rate)
		}
		return rate, nil
	}
	return 0, fmt.Errorf("no audio stream found")
}
