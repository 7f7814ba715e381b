package contactsync

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a contact sync job submitted to River.
// Only the domain name travels with the job; the expected contact is resolved
// when the job is worked.
type JobArgs struct {
	// DomainName is the domain whose contacts are synced. It is marked as
	// unique so River keeps at most one unfinished job per domain.
	DomainName string `json:"domainName" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs returns the job arguments for syncing domainName, retried at most
// maxAttempts times. A non-positive maxAttempts uses River's default.
func NewJobArgs(domainName string, maxAttempts int) JobArgs {
	return JobArgs{DomainName: domainName, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the contact sync worker.
func (args JobArgs) Kind() string { return "SyncDomainContacts" }

// InsertOpts returns the River options that control how the job is enqueued.
// A domain that already has a job waiting or running is not queued twice;
// finished jobs do not block a new one.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
