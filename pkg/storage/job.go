package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs (contact syncs, notifications and
// reconciliation cycles) into the queue backend that shares the database with
// the snapshot store. When called on a transactional handle the job becomes
// visible only once the transaction commits, so store mutations and the work
// they trigger are published together.
//
// Example:
//
//	added, err := tx.AddJob(ctx, contactsync.JobArgs{DomainName: "example.com"}, nil)
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the queue skipped the job as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
