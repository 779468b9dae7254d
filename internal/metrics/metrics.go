package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Run outcomes, used as the "outcome" label
const (
	OutcomeDone    = "done"
	OutcomeNoop    = "noop"
	OutcomeAborted = "aborted"
	OutcomeFailed  = "failed"
)

// Metrics holds the counters of a single process run on a private registry
type Metrics struct {
	registry       *prometheus.Registry
	runsTotal      *prometheus.CounterVec
	runDuration    prometheus.Histogram
	probeFallbacks prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voicenotes_runs_total",
			Help: "Pipeline runs by outcome",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voicenotes_run_duration_seconds",
			Help:    "Duration of pipeline runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		probeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voicenotes_probe_fallback_total",
			Help: "Times the default sample rate was used because probing failed",
		}),
	}
	m.registry.MustRegister(m.runsTotal, m.runDuration, m.probeFallbacks)
	return m
}

// RunFinished records the outcome and duration of one run
func (m *Metrics) RunFinished(outcome string, d time.Duration) {
	m.runsTotal.WithLabelValues(outcome).Inc()
	m.runDuration.Observe(d.Seconds())
}

func (m *Metrics) ProbeFallback() {
	m.probeFallbacks.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push sends the registry to a Prometheus Pushgateway, replacing the
// previous values for job
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	if err := push.New(gatewayURL, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
