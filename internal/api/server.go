// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the MAIke service.
package api

import (
	_ "embed"
	"fmt"
	"maike/internal/api/handler/v1handler"
	"maike/internal/config"
	"maike/pkg/controller"
	"maike/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// HandlerOptions configures the v1 handlers (cookies, uploads, throttling).
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single API request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts the profiling endpoints.
	EnablePprof bool
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// Registerer receives the HTTP latency histogram. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer is exposed at MetricsPath. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the HTTP handler tree:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - health check and /api routes
// - pprof endpoints when enabled
// Every route is wrapped with panic recovery, access logging, latency metrics and CORS.
func NewRouter(deps Deps, opts Options) (http.Handler, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	duration, err := metrics.NewHTTPDuration(deps.Registerer)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(controller.WithLogger)
	r.Use(controller.WithDuration(duration))
	r.Use(controller.WithCORS(opts.AllowedOrigins))

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/docs/*", v5emb.New(
		"MAIke API",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	if opts.EnablePprof {
		r.Handle(controller.PprofPath+"*", controller.PprofMux())
	}

	// v1 api
	h := v1handler.New(deps.Deps, opts.HandlerOptions)
	r.Group(func(r chi.Router) {
		r.Use(controller.WithTimeout(opts.RequestTimeout))
		h.Routes(r)
	})

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewRouter(deps, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create router: %w", err)
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
