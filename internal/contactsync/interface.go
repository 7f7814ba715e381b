// Package contactsync keeps the contacts registered for a domain in line with
// the configured expected contact.
package contactsync

import (
	"context"
)

//go:generate mockgen -package mockcontactsync -source=interface.go -destination=mock/mockcontactsync.go *
type Syncer interface {
	// Sync compares the registrar's contacts of domainName with the expected
	// contact and updates the registrar when they differ.
	Sync(ctx context.Context, domainName string) (Outcome, error)
	// Preview performs the same comparison as Sync without side effects.
	Preview(ctx context.Context, domainName string) (*Preview, error)
	// Enqueue schedules a contact sync job for domainName. It reports false
	// when a job for the domain is already waiting or running.
	Enqueue(ctx context.Context, domainName string) (bool, error)
}
