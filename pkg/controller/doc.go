// Package controller contains HTTP middlewares and helper handlers used by the
// web server.
//
// Provided middlewares:
//   - WithCORS: reflects allowed origins and answers OPTIONS preflight.
//   - WithLogger: attaches a request-scoped logger and request ID, then writes an access log.
//   - WithMetrics: records request latency in Prometheus.
//   - WithAccessGate: redirects between the admin area and its login pages based on the session cookie.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
