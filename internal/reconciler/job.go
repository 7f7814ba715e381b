package reconciler

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs triggers one reconciliation cycle. It carries no arguments: a
// cycle always works on the full registrar listing.
type JobArgs struct{}

// Kind returns the River job kind used to register and dispatch the reconcile worker.
func (args JobArgs) Kind() string { return "ReconcileRegistrations" }

// InsertOpts returns the River options for a cycle. A failed cycle is not
// retried, the next scheduled run picks up, and only one cycle can be queued
// or running at a time.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
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
