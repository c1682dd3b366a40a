// Package api configures and exposes the HTTP server: the public and admin
// routes, metrics, docs, profiling and the middleware chain around them.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"travel/internal/api/handler/v1handler"
	"travel/internal/config"
	"travel/pkg/controller"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI document of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. It is typically created
// from a config.Config via NewOptions.
type Options struct {
	Handler v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MaxBodyBytes limits request bodies, e.g. "1M". Uploads are bounded by
	// Handler.MaxUploadBytes instead.
	MaxBodyBytes string
	MetricsPath  string
	// AllowedOrigins are passed to the CORS middleware.
	AllowedOrigins []string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: v1handler.Options{
			SecureCookie:   cfg.Auth.SecureCookie,
			MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewEcho builds the router of the public and admin API.
func NewEcho(deps Deps, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = v1handler.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: opts.MaxBodyBytes,
		// multipart uploads carry their own size check
		Skipper: func(c echo.Context) bool { return c.Path() == "/admin/uploads" },
	}))

	v1handler.New(deps.Deps, opts.Handler).Register(e)

	return e
}

// NewServer wires up and returns a configured *http.Server. It serves:
// - Prometheus metrics (MetricsPath), including otel instruments
// - the embedded OpenAPI document and Swagger UI
// - pprof endpoints and a health check
// - everything else through the echo router behind the access gate
// The mux is wrapped with CORS, metrics and logging middlewares and a request
// timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if opts.MaxBodyBytes == "" {
		opts.MaxBodyBytes = "1M"
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Travel Agency API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// pprof
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// public site and admin
	mux.Handle("/", controller.WithAccessGate(NewEcho(deps, opts), controller.DefaultGateOptions()))

	handler := controller.WithCORS(opts.AllowedOrigins)(mux)
	handler = controller.WithMetrics(handler)
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"success":false,"error":"request timed out","code":"UNAVAILABLE"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
