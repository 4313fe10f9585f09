// Package metrics holds the shared instrumentation used across the
// application: common histogram buckets, the OpenTelemetry instrument bundle
// recorded by the repository decorator, and the Prometheus counter tracking
// stale fetch results discarded by the active-selection layer.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"orgdash/pkg/serrors"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// StaleDrops counts fetch results that resolved after their selection had
// already moved on and were therefore discarded. Labelled by slot
// ("organization", "agency", "agency_list").
var StaleDrops = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "orgdash_active_stale_drops_total",
	Help: "Stale fetch resolutions discarded by the active-selection layer.",
}, []string{"slot"})

// Repository bundles the OpenTelemetry instruments recorded for every
// repository call by the instrumentation decorator.
type Repository struct {
	calls   metric.Int64Counter
	latency metric.Float64Histogram
}

// NewRepository creates the repository instrument bundle on the given meter
// provider. The instruments are exported through whatever reader the provider
// was built with (the API server wires a Prometheus exporter).
func NewRepository(mp metric.MeterProvider) (*Repository, error) {
	meter := mp.Meter("orgdash/repository")

	calls, err := meter.Int64Counter("repository.calls",
		metric.WithDescription("Repository operations by name and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create calls counter: %w", err)
	}

	latency, err := meter.Float64Histogram("repository.latency",
		metric.WithDescription("Repository operation latency in seconds."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return &Repository{calls: calls, latency: latency}, nil
}

// Observe records one repository call. The outcome label is "ok" for nil
// errors, the semantic kind name when one is present, or "error" otherwise.
func (m *Repository) Observe(ctx context.Context, operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
		if k := serrors.KindOf(err); k != nil {
			outcome = k.Error()
		}
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	m.calls.Add(ctx, 1, attrs)
	m.latency.Record(ctx, time.Since(start).Seconds(), attrs)
}
