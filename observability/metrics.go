package observability

import "github.com/prometheus/client_golang/prometheus"

// Generation outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlgen_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_generations_total",
			Help: "Model generations by dialect and outcome.",
		},
		[]string{"dialect", "outcome"},
	)

	generationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlgen_generation_duration_seconds",
			Help:    "Latency of the external model call.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"dialect"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDurationSeconds, generationsTotal, generationDurationSeconds)
}

// ObserveGeneration records one model call.
func ObserveGeneration(dialect, outcome string, seconds float64) {
	generationsTotal.WithLabelValues(dialect, outcome).Inc()
	generationDurationSeconds.WithLabelValues(dialect).Observe(seconds)
}
