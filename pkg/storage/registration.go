package storage

import (
	"context"
	"domainsync/pkg/domain"
)

// CachedRegistration is a snapshot row: the registration facts observed in a
// previous cycle plus the row version used for optimistic concurrency. Version
// is owned by the store and never takes part in domain equality.
type CachedRegistration struct {
	domain.Registration

	// Version is incremented on every update. Updates and deletes must present
	// the version they read.
	Version int64
}

// RegistrationStorage is the snapshot store of registrations seen at the
// registrar, keyed by domain name.
type RegistrationStorage interface {
	// Registrations returns every cached registration.
	Registrations(ctx context.Context) ([]CachedRegistration, error)
	// InsertRegistration stores a registration that is not cached yet. A
	// serrors.ErrConflict is returned when the domain name already exists.
	InsertRegistration(ctx context.Context, reg domain.Registration) error
	// UpdateRegistration replaces the cached values of reg.DomainName if the
	// stored version still equals version, and bumps the version. A
	// serrors.ErrConflict is returned otherwise.
	UpdateRegistration(ctx context.Context, reg domain.Registration, version int64) error
	// DeleteRegistration removes the cached registration identified by
	// domainName and version. A serrors.ErrConflict is returned when no row
	// matches both.
	DeleteRegistration(ctx context.Context, domainName string, version int64) error
}
