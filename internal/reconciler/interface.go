// Package reconciler keeps the cached snapshot of domain registrations in line
// with the registrar and queues the follow-up contact syncs.
package reconciler

import "context"

//go:generate mockgen -package mockreconciler -source=interface.go -destination=mock/mockreconciler.go *
type Reconciler interface {
	// Run performs one reconciliation cycle and returns what it changed.
	Run(ctx context.Context) (Plan, error)
	// Enqueue schedules a reconciliation cycle. It reports false when a cycle
	// is already queued or running.
	Enqueue(ctx context.Context) (bool, error)
}
