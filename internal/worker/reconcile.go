package worker

import (
	"context"
	"domainsync/internal/reconciler"
	"domainsync/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ReconcileWorker runs one reconciliation cycle per job.
type ReconcileWorker struct {
	river.WorkerDefaults[reconciler.JobArgs]

	reconciler reconciler.Reconciler
}

// NewReconcileWorker constructs a ReconcileWorker using the provided reconciler.
func NewReconcileWorker(r reconciler.Reconciler) *ReconcileWorker {
	return &ReconcileWorker{reconciler: r}
}

// Work runs the cycle. A failed cycle is logged and left to the next
// scheduled run.
func (w *ReconcileWorker) Work(ctx context.Context, job *river.Job[reconciler.JobArgs]) error {
	ctx = logger.WithJob(ctx, job.ID, job.Kind, job.Attempt)

	plan, err := w.reconciler.Run(ctx)
	if err != nil {
		logger.Error(ctx, "reconciliation cycle failed", zap.Error(err))

		return jobError(err, "could not reconcile registrations")
	}

	logger.Info(ctx, "reconciliation cycle finished",
		zap.Int("added", len(plan.Added)),
		zap.Int("updated", len(plan.Updated)),
		zap.Int("deleted", len(plan.Deleted)),
		zap.Int("unchanged", len(plan.Unchanged)),
		zap.Int("contactSyncs", len(plan.ContactSync)))

	return nil
}
