// Package metrics holds the application's Prometheus and OpenTelemetry instruments.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewHTTPDuration creates the request latency histogram used by the access log
// middleware and registers it with reg.
func NewHTTPDuration(reg prometheus.Registerer) (*prometheus.HistogramVec, error) {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "maike",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by method and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "status"})
	if err := reg.Register(h); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return h, nil
}

// Instruments groups the business counters recorded by services and workers.
type Instruments struct {
	logins          metric.Int64Counter
	uploadedBytes   metric.Int64Counter
	generatedImages metric.Int64Counter
	generationJobs  metric.Int64Counter
}

// New creates the business instruments from mp.
func New(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter("maike")

	logins, err := meter.Int64Counter("maike.auth.logins",
		metric.WithDescription("Login attempts by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create logins counter: %w", err)
	}
	uploaded, err := meter.Int64Counter("maike.blobs.uploaded",
		metric.WithDescription("Bytes written to the blob store."),
		metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("could not create uploaded bytes counter: %w", err)
	}
	generated, err := meter.Int64Counter("maike.images.generated",
		metric.WithDescription("Images returned by the image provider."))
	if err != nil {
		return nil, fmt.Errorf("could not create generated images counter: %w", err)
	}
	jobs, err := meter.Int64Counter("maike.generation.jobs",
		metric.WithDescription("Finished image generation jobs by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create generation jobs counter: %w", err)
	}

	return &Instruments{
		logins:          logins,
		uploadedBytes:   uploaded,
		generatedImages: generated,
		generationJobs:  jobs,
	}, nil
}

// Noop returns instruments that record nothing. Useful in tests.
func Noop() *Instruments {
	i, _ := New(noop.NewMeterProvider())

	return i
}

// Login records a login attempt.
func (i *Instruments) Login(ctx context.Context, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	i.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// Uploaded records n bytes written to the blob store.
func (i *Instruments) Uploaded(ctx context.Context, n int64) {
	i.uploadedBytes.Add(ctx, n)
}

// Generated records n images produced for a list.
func (i *Instruments) Generated(ctx context.Context, n int) {
	i.generatedImages.Add(ctx, int64(n))
}

// GenerationJob records the outcome of a generation job ("completed",
// "retry", "snoozed", "cancelled", "failed").
func (i *Instruments) GenerationJob(ctx context.Context, outcome string) {
	i.generationJobs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
