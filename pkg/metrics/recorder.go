package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "domainsync"

// Contact sync outcomes reported by RecordContactSync.
const (
	OutcomeSkipped        = "skipped"
	OutcomeApplied        = "applied"
	OutcomeMissingContact = "missing_contact"
	OutcomeFailed         = "failed"
)

// Recorder records reconciliation and contact sync measurements.
type Recorder struct {
	cycles          metric.Int64Counter
	cycleDuration   metric.Float64Histogram
	domains         metric.Int64Counter
	contactSyncs    metric.Int64Counter
	contactDuration metric.Float64Histogram
}

// NewRecorder creates the instruments on a meter obtained from mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	cycles, err := meter.Int64Counter("domainsync.reconcile.cycles",
		metric.WithDescription("Number of reconciliation cycles by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create cycles counter: %w", err)
	}
	cycleDuration, err := meter.Float64Histogram("domainsync.reconcile.duration",
		metric.WithDescription("Duration of reconciliation cycles."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create cycle duration histogram: %w", err)
	}
	domains, err := meter.Int64Counter("domainsync.reconcile.domains",
		metric.WithDescription("Number of domains classified by reconciliation cycles."))
	if err != nil {
		return nil, fmt.Errorf("could not create domains counter: %w", err)
	}
	contactSyncs, err := meter.Int64Counter("domainsync.contactsync.runs",
		metric.WithDescription("Number of contact sync runs by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create contact sync counter: %w", err)
	}
	contactDuration, err := meter.Float64Histogram("domainsync.contactsync.duration",
		metric.WithDescription("Duration of contact sync runs."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create contact sync duration histogram: %w", err)
	}

	return &Recorder{
		cycles:          cycles,
		cycleDuration:   cycleDuration,
		domains:         domains,
		contactSyncs:    contactSyncs,
		contactDuration: contactDuration,
	}, nil
}

// NewNopRecorder returns a Recorder that drops every measurement.
func NewNopRecorder() *Recorder {
	r, _ := NewRecorder(noop.NewMeterProvider())

	return r
}

func result(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String("result", "failure")
	}

	return attribute.String("result", "success")
}

// RecordCycle records one finished reconciliation cycle.
func (r *Recorder) RecordCycle(ctx context.Context, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(result(err))
	r.cycles.Add(ctx, 1, attrs)
	r.cycleDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordClassified records n domains given the same classification
// (added, updated, deleted or unchanged) in a cycle.
func (r *Recorder) RecordClassified(ctx context.Context, classification string, n int) {
	if n == 0 {
		return
	}
	r.domains.Add(ctx, int64(n), metric.WithAttributes(attribute.String("classification", classification)))
}

// RecordContactSync records one contact sync run.
func (r *Recorder) RecordContactSync(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	r.contactSyncs.Add(ctx, 1, attrs)
	r.contactDuration.Record(ctx, elapsed.Seconds(), attrs)
}
