package contactsync

import (
	"context"
	"domainsync/internal/config"
	"domainsync/internal/notification"
	"domainsync/pkg/domain"
	"domainsync/pkg/logger"
	"domainsync/pkg/metrics"
	"domainsync/pkg/registrar"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Outcome summarizes what a Sync call did.
type Outcome string

const (
	OutcomeSkipped        Outcome = metrics.OutcomeSkipped
	OutcomeApplied        Outcome = metrics.OutcomeApplied
	OutcomeMissingContact Outcome = metrics.OutcomeMissingContact
	OutcomeFailed         Outcome = metrics.OutcomeFailed
)

// Preview is the comparison of the expected and the registered contacts of a
// domain.
type Preview struct {
	DomainName string                  `json:"domainName"`
	Source     Source                  `json:"source"`
	Expected   domain.DomainContacts   `json:"expected"`
	Actual     domain.DomainContacts   `json:"actual"`
	Decision   Decision                `json:"decision"`
	Changes    []domain.RoleDifference `json:"changes"`
}

// UpdatedMessage is the notification sent after a domain's contacts changed.
func UpdatedMessage(domainName string) string {
	return fmt.Sprintf("Domain '%s' has been updated with new contact details", domainName)
}

// Options configure how contact sync jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts for a contact sync job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Sync.ContactSyncMaxAttempts,
	}
}

// syncer is the concrete implementation of the Syncer interface.
type syncer struct {
	options   Options
	storage   storage.Storage
	registrar registrar.Client
	recorder  *metrics.Recorder
	tracer    trace.Tracer
}

// Preview resolves the expected contact and compares it with what the
// registrar holds. ErrNoContact is returned when nothing is configured.
func (s *syncer) Preview(ctx context.Context, domainName string) (*Preview, error) {
	if domainName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain name is required")
	}

	contact, source, err := ResolveExpected(ctx, s.storage, domainName)
	if err != nil {
		return nil, err
	}
	expected := domain.UniformContacts(contact)

	actual, err := s.registrar.GetDomainContacts(ctx, domainName)
	if err != nil {
		return nil, fmt.Errorf("could not get domain contacts: %w", err)
	}

	return &Preview{
		DomainName: domainName,
		Source:     source,
		Expected:   expected,
		Actual:     actual,
		Decision:   Decide(expected, actual),
		Changes:    expected.Differences(actual),
	}, nil
}

// Sync brings the registrar's contacts of domainName in line with the expected
// contact. A domain without any configured contact is skipped without error.
// Registrar failures are returned as is so the queue redelivers the job.
func (s *syncer) Sync(ctx context.Context, domainName string) (outcome Outcome, err error) {
	ctx, span := s.tracer.Start(ctx, "contactsync.Sync",
		trace.WithAttributes(attribute.String("domain", domainName)))
	start := time.Now()
	defer func() {
		if err != nil {
			outcome = OutcomeFailed
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.String("outcome", string(outcome)))
		span.End()
		s.recorder.RecordContactSync(ctx, string(outcome), time.Since(start))
	}()

	ctx = logger.WithDomain(ctx, domainName)

	preview, err := s.Preview(ctx, domainName)
	if errors.Is(err, ErrNoContact) {
		logger.Error(ctx, "no contact and no default contact configured, skipping domain", zap.Error(err))

		return OutcomeMissingContact, nil
	}
	if err != nil {
		return OutcomeFailed, err
	}

	if preview.Decision == DecisionSkip {
		logger.Info(ctx, "domain contacts already up to date", zap.String("source", string(preview.Source)))

		return OutcomeSkipped, nil
	}

	logger.Info(ctx, "updating domain contacts",
		zap.String("source", string(preview.Source)),
		zap.Any("changes", preview.Changes))

	if err := s.registrar.SetDomainContacts(ctx, domainName, preview.Expected); err != nil {
		return OutcomeFailed, fmt.Errorf("could not update domain contacts: %w", err)
	}

	// the update went through, a lost notification must not redeliver the job
	if _, err := s.storage.AddJob(ctx, notification.JobArgs{Message: UpdatedMessage(domainName)}, nil); err != nil {
		logger.Error(ctx, "could not enqueue contact update notification", zap.Error(err))
	}

	logger.Info(ctx, "domain contacts updated")

	return OutcomeApplied, nil
}

// Enqueue schedules a contact sync job for domainName.
func (s *syncer) Enqueue(ctx context.Context, domainName string) (bool, error) {
	if domainName == "" {
		return false, serrors.With(serrors.ErrBadRequest, "domain name is required")
	}

	added, err := s.storage.AddJob(ctx, NewJobArgs(domainName, s.options.MaxAttempts), nil)
	if err != nil {
		return false, fmt.Errorf("could not add contact sync job: %w", err)
	}

	return added, nil
}

// New creates a new Syncer backed by the provided storage and registrar.
// A nil recorder drops measurements.
func New(storage storage.Storage, registrar registrar.Client, recorder *metrics.Recorder, options Options) Syncer {
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}

	return &syncer{
		options:   options,
		storage:   storage,
		registrar: registrar,
		recorder:  recorder,
		tracer:    otel.Tracer("domainsync/internal/contactsync"),
	}
}
