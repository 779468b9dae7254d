package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type recognitionRequest struct {
	Model      string                `json:"model"`
	Input      recognitionInput      `json:"input"`
	Parameters recognitionParameters `json:"parameters"`
}

type recognitionInput struct {
	AudioURL string `json:"audio_url"`
}

type recognitionParameters struct {
	SampleRate int `json:"sample_rate"`
}

type recognitionResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Output    struct {
		Sentences []sentence `json:"sentences"`
	} `json:"output"`
}

type sentence struct {
	BeginTime int64  `json:"begin_time"`
	EndTime   int64  `json:"end_time"`
	Text      string `json:"text"`
}

// Transcribe probes the audio, submits a synchronous recognition request
// and returns the first recognized utterance.
func (t *implTranscriber) Transcribe(ctx context.Context, audioURL string) Outcome {
	sampleRate := t.prober.DetectSampleRate(ctx, audioURL)

	t.logger.Info(ctx, "Submitting recognition request (model=%s, sample_rate=%dHz): %s",
		t.model, sampleRate, audioURL)

	payload, err := json.Marshal(recognitionRequest{
		Model:      t.model,
		Input:      recognitionInput{AudioURL: audioURL},
		Parameters: recognitionParameters{SampleRate: sampleRate},
	})
	if err != nil {
		return Failure(FailureException, "encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Failure(FailureException, "build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return Failure(FailureException, "call recognition service: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(FailureException, "read response: %v", err)
	}
	t.logger.Debug(ctx, "Recognition service answered HTTP %d in %s", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return Failure(FailureRecognition, "%s", serviceMessage(resp.StatusCode, body))
	}

	var parsed recognitionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Failure(FailureException, "decode response: %v", err)
	}

	if len(parsed.Output.Sentences) == 0 {
		return Failure(FailureRecognition, "no utterances recognized (request_id=%s)", parsed.RequestID)
	}
	text := strings.TrimSpace(parsed.Output.Sentences[0].Text)
	if text == "" {
		return Failure(FailureRecognition, "first utterance is empty (request_id=%s)", parsed.RequestID)
	}

	t.logger.Info(ctx, "Transcription completed: %d utterances, %d characters in first",
		len(parsed.Output.Sentences), len([]rune(text)))
	return Success(text)
}

// serviceMessage prefers the service's own message over the HTTP status text
func serviceMessage(status int, body []byte) string {
	var parsed recognitionResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		if parsed.Code != "" {
			return fmt.Sprintf("HTTP %d %s: %s", status, parsed.Code, parsed.Message)
		}
		return fmt.Sprintf("HTTP %d: %s", status, parsed.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
