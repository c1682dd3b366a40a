package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"travel/pkg/metrics"
)

// WithMetrics observes request latency in metrics.HTTPRequestDuration.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.HTTPRequestDuration.
			WithLabelValues(area(r.URL.Path), r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// area keeps label cardinality bounded; slugs and ids never become labels.
func area(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/"):
		return "api"
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return "admin"
	default:
		return "ops"
	}
}
