package metrics_test

import (
	"context"
	"furl/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader sdkmetric.Reader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	res := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			res[m.Name] = m
		}
	}

	return res
}

func sum(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()

	data, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	var total int64
	for _, dp := range data.DataPoints {
		total += dp.Value
	}

	return total
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	rec, err := metrics.New(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	ctx := context.Background()
	rec.Parsed(ctx, true)
	rec.Parsed(ctx, false)
	rec.Parsed(ctx, false)
	rec.Dropped(ctx, "NOT_A_URL")
	rec.Merged(ctx, 4)
	rec.Batch(ctx, "dedup", 20*time.Millisecond)

	got := collect(t, reader)
	require.Equal(t, int64(3), sum(t, got["furl_records_parsed"]))
	require.Equal(t, int64(1), sum(t, got["furl_records_dropped"]))
	require.Equal(t, int64(4), sum(t, got["furl_records_merged"]))

	hist, ok := got["furl_batch_duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(1), hist.DataPoints[0].Count)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)
}

func TestNewPrometheusProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewPrometheusProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	rec, err := metrics.New(mp)
	require.NoError(t, err)
	rec.Dropped(context.Background(), "INVALID_DOMAIN")

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		require.NotContains(t, f.GetName(), ".", "exported name %q", f.GetName())
		if strings.HasPrefix(f.GetName(), "furl_records_dropped") {
			found = true
		}
	}
	require.True(t, found, "dropped counter should be exported to prometheus")
}
