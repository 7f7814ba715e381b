// Package worker runs the background jobs of the service on River: the
// scheduled reconciliation cycle, the per-domain contact syncs and the
// operator notifications.
package worker

import (
	"context"
	"domainsync/internal/config"
	"domainsync/internal/contactsync"
	"domainsync/internal/reconciler"
	"domainsync/pkg/logger"
	"domainsync/pkg/notifier"
	"domainsync/pkg/serrors"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const (
	// temporarySnooze is how long a job waits after a throttled or failing
	// dependency. Snoozing does not use up an attempt.
	temporarySnooze = time.Minute
	// defaultMaxWorkers is used when no worker count is configured.
	defaultMaxWorkers = 10
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently.
	MaxWorkers int
	// Schedule decides when reconciliation cycles run.
	Schedule river.PeriodicSchedule
	// RunOnStart enqueues a cycle as soon as the client starts.
	RunOnStart bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	schedule, err := ParseDailySchedule(cfg.Sync.DailyAt)
	if err != nil {
		return Options{}, err
	}

	return Options{
		MaxWorkers: cfg.Sync.MaxWorkers,
		Schedule:   schedule,
		RunOnStart: cfg.Sync.RunOnStart,
	}, nil
}

// Deps are the services the workers delegate to.
type Deps struct {
	Reconciler reconciler.Reconciler
	Syncer     contactsync.Syncer
	Notifier   notifier.Notifier
}

// NewWorkers registers every worker of the service.
func NewWorkers(deps Deps) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewReconcileWorker(deps.Reconciler))
	river.AddWorker(workers, NewContactSyncWorker(deps.Syncer))
	river.AddWorker(workers, NewNotificationWorker(deps.Notifier))

	return workers
}

// NewPeriodicJobs returns the periodic job that triggers reconciliation cycles.
func NewPeriodicJobs(opts Options) []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			opts.Schedule,
			func() (river.JobArgs, *river.InsertOpts) {
				return reconciler.JobArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: opts.RunOnStart},
		),
	}
}

// Start creates and starts a River client working every job kind of the
// service and scheduling reconciliation cycles.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      NewWorkers(deps),
		PeriodicJobs: NewPeriodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// jobError maps a service error to the River action. Invalid input cancels
// the job and temporary failures snooze it; anything else is retried.
func jobError(err error, msg string) error {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return river.JobCancel(err) //nolint: wrapcheck
	case serrors.Temporary(err):
		return river.JobSnooze(temporarySnooze) //nolint: wrapcheck
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
