package reconciler

import (
	"context"
	"domainsync/internal/config"
	"domainsync/internal/contactsync"
	"domainsync/internal/notification"
	"domainsync/pkg/domain"
	"domainsync/pkg/logger"
	"domainsync/pkg/metrics"
	"domainsync/pkg/registrar"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultExpiryGracePeriod is how long a domain is kept after its expiry date.
const DefaultExpiryGracePeriod = 31 * 24 * time.Hour

// Options configure a reconciliation cycle.
type Options struct {
	// ExpiryGracePeriod is how long after its expiry a registered domain is
	// still kept. Defaults to DefaultExpiryGracePeriod.
	ExpiryGracePeriod time.Duration
	// ContactSyncMaxAttempts is the maximum number of attempts of the contact
	// sync jobs queued by a cycle.
	ContactSyncMaxAttempts int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ExpiryGracePeriod:      cfg.Registrar.ExpiryGracePeriod,
		ContactSyncMaxAttempts: cfg.Sync.ContactSyncMaxAttempts,
	}
}

// reconciler is the concrete implementation of the Reconciler interface.
type reconciler struct {
	options   Options
	storage   storage.Storage
	registrar registrar.Client
	recorder  *metrics.Recorder
	tracer    trace.Tracer
}

// index turns the registrar listing into a map keyed by domain name.
func index(listed []domain.Registration) (map[string]domain.Registration, error) {
	out := make(map[string]domain.Registration, len(listed))
	for _, reg := range listed {
		if reg.DomainName == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "registrar listed a domain without a name")
		}
		if _, ok := out[reg.DomainName]; ok {
			return nil, serrors.With(serrors.ErrConflict, "domain %q listed twice", reg.DomainName)
		}
		out[reg.DomainName] = reg
	}

	return out, nil
}

// Run performs one cycle. The registrar listing is drained before anything
// is written; a listing failure ends the cycle with the store untouched.
// Snapshot mutations, contact sync jobs and the summary notification are
// committed in a single transaction.
func (r *reconciler) Run(ctx context.Context) (plan Plan, err error) {
	ctx, span := r.tracer.Start(ctx, "reconciler.Run")
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		r.recorder.RecordCycle(ctx, time.Since(start), err)
	}()

	listed, err := r.registrar.ListRegisteredDomains(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("could not list registered domains: %w", err)
	}
	registered, err := index(listed)
	if err != nil {
		return Plan{}, fmt.Errorf("invalid registrar listing: %w", err)
	}
	logger.Debug(ctx, "registrar listing fetched", zap.Int("domains", len(registered)))

	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		rows, err := tx.Registrations(ctx)
		if err != nil {
			return fmt.Errorf("could not get cached registrations: %w", err)
		}

		cached := make(map[string]domain.Registration, len(rows))
		versions := make(map[string]int64, len(rows))
		for _, row := range rows {
			cached[row.DomainName] = row.Registration
			versions[row.DomainName] = row.Version
		}

		plan = Diff(registered, cached, r.options.Now().UTC(), r.options.ExpiryGracePeriod)

		return r.apply(ctx, tx, plan, registered, versions)
	}); err != nil {
		return Plan{}, fmt.Errorf("could not apply reconciliation: %w", err)
	}

	span.SetAttributes(
		attribute.Int("added", len(plan.Added)),
		attribute.Int("updated", len(plan.Updated)),
		attribute.Int("deleted", len(plan.Deleted)),
		attribute.Int("unchanged", len(plan.Unchanged)),
	)
	r.recorder.RecordClassified(ctx, "added", len(plan.Added))
	r.recorder.RecordClassified(ctx, "updated", len(plan.Updated))
	r.recorder.RecordClassified(ctx, "deleted", len(plan.Deleted))
	r.recorder.RecordClassified(ctx, "unchanged", len(plan.Unchanged))

	logger.Info(ctx, "registrations reconciled",
		zap.Strings("added", plan.Added),
		zap.Strings("updated", plan.Updated),
		zap.Strings("deleted", plan.Deleted),
		zap.Int("unchanged", len(plan.Unchanged)))

	return plan, nil
}

// apply writes the plan in the order deletions, insertions, updates and then
// queues the follow-up jobs.
func (r *reconciler) apply(ctx context.Context,
	tx storage.AllStorage,
	plan Plan,
	registered map[string]domain.Registration,
	versions map[string]int64) error {
	for _, name := range plan.Deleted {
		version, ok := versions[name]
		if !ok {
			// expired before it was ever cached
			continue
		}
		if err := tx.DeleteRegistration(ctx, name, version); err != nil {
			return fmt.Errorf("could not delete registration %q: %w", name, err)
		}
	}

	for _, name := range plan.Added {
		if err := tx.InsertRegistration(ctx, registered[name]); err != nil {
			return fmt.Errorf("could not insert registration %q: %w", name, err)
		}
	}

	for _, name := range plan.Updated {
		if err := tx.UpdateRegistration(ctx, registered[name], versions[name]); err != nil {
			return fmt.Errorf("could not update registration %q: %w", name, err)
		}
	}

	for _, name := range plan.ContactSync {
		added, err := tx.AddJob(ctx, contactsync.NewJobArgs(name, r.options.ContactSyncMaxAttempts), nil)
		if err != nil {
			return fmt.Errorf("could not add contact sync job for %q: %w", name, err)
		}
		if !added {
			logger.Debug(ctx, "contact sync already pending", zap.String(logger.DomainKey, name))
		}
	}

	if plan.HasChanges() {
		if _, err := tx.AddJob(ctx, notification.JobArgs{Message: plan.Summary()}, nil); err != nil {
			return fmt.Errorf("could not add summary notification: %w", err)
		}
	}

	return nil
}

// Enqueue schedules a reconciliation cycle.
func (r *reconciler) Enqueue(ctx context.Context) (bool, error) {
	added, err := r.storage.AddJob(ctx, JobArgs{}, nil)
	if err != nil {
		return false, fmt.Errorf("could not add reconcile job: %w", err)
	}

	return added, nil
}

// New creates a new Reconciler backed by the provided storage and registrar.
// A nil recorder drops measurements.
func New(storage storage.Storage, registrar registrar.Client, recorder *metrics.Recorder, options Options) Reconciler {
	if options.ExpiryGracePeriod <= 0 {
		options.ExpiryGracePeriod = DefaultExpiryGracePeriod
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}

	return &reconciler{
		options:   options,
		storage:   storage,
		registrar: registrar,
		recorder:  recorder,
		tracer:    otel.Tracer("domainsync/internal/reconciler"),
	}
}
