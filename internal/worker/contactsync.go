package worker

import (
	"context"
	"domainsync/internal/contactsync"
	"domainsync/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ContactSyncWorker syncs the contacts of the domain named by the job.
// Different domains are worked concurrently; River's unique options keep one
// job per domain in flight.
type ContactSyncWorker struct {
	river.WorkerDefaults[contactsync.JobArgs]

	syncer contactsync.Syncer
}

// NewContactSyncWorker constructs a ContactSyncWorker using the provided syncer.
func NewContactSyncWorker(s contactsync.Syncer) *ContactSyncWorker {
	return &ContactSyncWorker{syncer: s}
}

func (w *ContactSyncWorker) Work(ctx context.Context, job *river.Job[contactsync.JobArgs]) error {
	ctx = logger.WithJob(ctx, job.ID, job.Kind, job.Attempt)

	outcome, err := w.syncer.Sync(ctx, job.Args.DomainName)
	if err != nil {
		logger.Error(ctx, "contact sync failed", zap.Error(err))

		return jobError(err, "could not sync domain contacts")
	}

	logger.Debug(ctx, "contact sync finished", zap.String("outcome", string(outcome)))

	return nil
}
