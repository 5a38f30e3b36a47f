package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cricket_live"

// Call outcomes recorded per upstream request.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// SourceMetrics tracks upstream provider traffic. A nil *SourceMetrics is a no-op.
type SourceMetrics struct {
	calls     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	selection *prometheus.CounterVec
}

func NewSourceMetrics(reg prometheus.Registerer) *SourceMetrics {
	factory := promauto.With(reg)

	return &SourceMetrics{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_calls_total",
				Help:      "Total number of upstream provider calls",
			},
			[]string{"source", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "source_call_duration_seconds",
				Help:      "Duration of upstream provider calls in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"source"},
		),
		selection: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_selected_total",
				Help:      "Number of requests answered by each source",
			},
			[]string{"operation", "source"},
		),
	}
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *SourceMetrics) ObserveCall(source, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(source, outcome).Inc()
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveSelection records which source answered an aggregated request.
// source is "none" when every source came back empty.
func (m *SourceMetrics) ObserveSelection(operation, source string) {
	if m == nil {
		return
	}
	if source == "" {
		source = "none"
	}
	m.selection.WithLabelValues(operation, source).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
