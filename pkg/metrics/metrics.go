// Package metrics holds the Prometheus collectors shared across the
// application. They register on the default registry served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var (
	// HTTPRequestDuration observes request latency by area ("api", "admin",
	// "ops"), method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "travel",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"area", "method", "code"})

	// ContentMutations counts content writes by entity, action and outcome.
	ContentMutations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "travel",
		Subsystem: "content",
		Name:      "mutations_total",
		Help:      "Content create, update and delete operations.",
	}, []string{"entity", "action", "outcome"})

	// JobsProcessed counts background jobs by kind and outcome.
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "travel",
		Subsystem: "worker",
		Name:      "jobs_total",
		Help:      "Background jobs processed.",
	}, []string{"kind", "outcome"})
)

// Outcome labels a mutation or job result.
func Outcome(err error) string {
	if err != nil {
		return "failure"
	}

	return "success"
}
