package metrics_test

import (
	"context"
	"domainsync/pkg/metrics"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func sumByAttr(t *testing.T, m metricdata.Metrics, key string) map[string]int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)

	out := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		v, ok := dp.Attributes.Value(attribute.Key(key))
		require.True(t, ok)
		out[v.AsString()] += dp.Value
	}

	return out
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	r, err := metrics.NewRecorder(mp)
	require.NoError(t, err)

	ctx := context.Background()
	r.RecordCycle(ctx, time.Second, nil)
	r.RecordCycle(ctx, time.Second, errors.New("boom"))
	r.RecordClassified(ctx, "added", 2)
	r.RecordClassified(ctx, "deleted", 1)
	r.RecordClassified(ctx, "updated", 0)
	r.RecordContactSync(ctx, metrics.OutcomeApplied, time.Millisecond)
	r.RecordContactSync(ctx, metrics.OutcomeSkipped, time.Millisecond)
	r.RecordContactSync(ctx, metrics.OutcomeSkipped, time.Millisecond)

	got := collect(t, reader)

	require.Equal(t, map[string]int64{"success": 1, "failure": 1},
		sumByAttr(t, got["domainsync.reconcile.cycles"], "result"))
	require.Equal(t, map[string]int64{"added": 2, "deleted": 1},
		sumByAttr(t, got["domainsync.reconcile.domains"], "classification"))
	require.Equal(t, map[string]int64{"applied": 1, "skipped": 2},
		sumByAttr(t, got["domainsync.contactsync.runs"], "outcome"))

	hist, ok := got["domainsync.reconcile.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)
}

func TestNewNopRecorder(t *testing.T) {
	r := metrics.NewNopRecorder()
	require.NotNil(t, r)
	r.RecordCycle(context.Background(), time.Second, nil)
	r.RecordContactSync(context.Background(), metrics.OutcomeFailed, time.Second)
}

func TestNewMeterProvider(t *testing.T) {
	mp, err := metrics.NewMeterProvider(prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, mp)
	require.NoError(t, mp.Shutdown(context.Background()))
}
