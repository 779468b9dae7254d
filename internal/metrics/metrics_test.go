package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRunFinished(t *testing.T) {
	m := New()
	m.RunFinished(OutcomeDone, 2*time.Second)
	m.RunFinished(OutcomeAborted, time.Second)
	m.RunFinished(OutcomeDone, time.Second)

	if got := testutil.ToFloat64(m.runsTotal.WithLabelValues(OutcomeDone)); got != 2 {
		t.Errorf("done runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.runsTotal.WithLabelValues(OutcomeAborted)); got != 1 {
		t.Errorf("aborted runs = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.runDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestProbeFallback(t *testing.T) {
	m := New()
	m.ProbeFallback()
	m.ProbeFallback()

	if got := testutil.ToFloat64(m.probeFallbacks); got != 2 {
		t.Errorf("probe fallbacks = %v, want 2", got)
	}
}

func TestPush(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New()
	m.RunFinished(OutcomeNoop, 0)

	if err := m.Push(context.Background(), srv.URL, "voice-notes"); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if gotPath != "/metrics/job/voice-notes" {
		t.Errorf("path = %q, want /metrics/job/voice-notes", gotPath)
	}
	if !strings.Contains(gotBody, "voicenotes_runs_total") {
		t.Error("pushed body does not contain voicenotes_runs_total")
	}
}

func TestPushError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if err := New().Push(context.Background(), srv.URL, "voice-notes"); err == nil {
		t.Error("Push() should fail when the gateway rejects the request")
	}
}
