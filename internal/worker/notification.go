package worker

import (
	"context"
	"domainsync/internal/notification"
	"domainsync/pkg/logger"
	"domainsync/pkg/notifier"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker delivers queued notifications.
type NotificationWorker struct {
	river.WorkerDefaults[notification.JobArgs]

	notifier notifier.Notifier
}

// NewNotificationWorker constructs a NotificationWorker using the provided notifier.
func NewNotificationWorker(n notifier.Notifier) *NotificationWorker {
	return &NotificationWorker{notifier: n}
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[notification.JobArgs]) error {
	ctx = logger.WithJob(ctx, job.ID, job.Kind, job.Attempt)

	if err := w.notifier.Notify(ctx, job.Args.Message); err != nil {
		logger.Warn(ctx, "could not send notification", zap.Error(err))

		return jobError(err, "could not send notification")
	}

	return nil
}
