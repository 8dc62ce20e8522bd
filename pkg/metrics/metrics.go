// Package metrics records furl's counters through OpenTelemetry and exposes
// them to Prometheus when the HTTP server runs.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "furl"

// Recorder holds the instruments of a run or server.
type Recorder struct {
	parsed  metric.Int64Counter
	dropped metric.Int64Counter
	merged  metric.Int64Counter
	batch   metric.Float64Histogram
}

// New creates the instruments on the given provider. Pass
// otel.GetMeterProvider() to record into the global (no-op by default)
// provider.
func New(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	parsed, err := meter.Int64Counter("furl_records_parsed",
		metric.WithDescription("Tokens normalized into URLs"),
		metric.WithUnit("{record}"))
	if err != nil {
		return nil, fmt.Errorf("could not create parsed counter: %w", err)
	}

	dropped, err := meter.Int64Counter("furl_records_dropped",
		metric.WithDescription("Tokens dropped, by reason"),
		metric.WithUnit("{record}"))
	if err != nil {
		return nil, fmt.Errorf("could not create dropped counter: %w", err)
	}

	merged, err := meter.Int64Counter("furl_records_merged",
		metric.WithDescription("URLs folded into an equivalent URL by dedup"),
		metric.WithUnit("{record}"))
	if err != nil {
		return nil, fmt.Errorf("could not create merged counter: %w", err)
	}

	batch, err := meter.Float64Histogram("furl_batch_duration",
		metric.WithDescription("Time spent processing one batch of tokens"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create batch histogram: %w", err)
	}

	return &Recorder{parsed: parsed, dropped: dropped, merged: merged, batch: batch}, nil
}

// Parsed counts a normalized token.
func (r *Recorder) Parsed(ctx context.Context, explicitScheme bool) {
	r.parsed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("explicit_scheme", explicitScheme)))
}

// Dropped counts a token excluded from the output.
func (r *Recorder) Dropped(ctx context.Context, reason string) {
	r.dropped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// Merged counts URLs absorbed by dedup.
func (r *Recorder) Merged(ctx context.Context, count int) {
	r.merged.Add(ctx, int64(count))
}

// Batch records how long one batch took in the given mode.
func (r *Recorder) Batch(ctx context.Context, mode string, took time.Duration) {
	r.batch.Record(ctx, took.Seconds(), metric.WithAttributes(attribute.String("mode", mode)))
}

// NewPrometheusProvider returns a meter provider whose instruments are
// exported through reg.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
