// Package storage declares what the service persists: the snapshot of
// registrations last seen at the registrar, the expected contacts, and the
// background jobs that follow up on a reconciliation. pkg/storage/postgres
// implements it; services depend only on these interfaces.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every capability available both inside and outside a
// transaction.
type AllStorage interface {
	RegistrationStorage
	ContactStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long-lived handle created at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Calling it on a transactional handle fails
	// with ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil
	// and rolled back otherwise. A reconciliation cycle applies its whole plan,
	// and enqueues the jobs it implies, inside one WithTx call.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
