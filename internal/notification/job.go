// Package notification carries operator notifications through the job queue
// so that they are published together with the change that caused them.
package notification

import (
	"github.com/riverqueue/river"
)

// DefaultMaxAttempts is how many times delivery of a notification is tried.
const DefaultMaxAttempts = 5

// JobArgs contains the arguments for a notification job submitted to River.
type JobArgs struct {
	// Message is the plain-text notification body.
	Message string `json:"message"`
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args JobArgs) Kind() string { return "SendNotification" }

// InsertOpts returns the River options used when enqueueing the notification.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: DefaultMaxAttempts,
	}
}
