package storage

import (
	"context"
	"domainsync/pkg/domain"
)

// DefaultContactKey is the key of the contact used for every domain that has no
// contact of its own.
const DefaultContactKey = "default"

// ContactRecord is a stored contact together with the key it is stored under:
// either a domain name or DefaultContactKey.
type ContactRecord struct {
	Key     string         `json:"key"`
	Contact domain.Contact `json:"contact"`
}

// ContactStorage is the lookup of expected contacts. Each stored contact plays
// all three contact roles of the domain it is keyed by.
type ContactStorage interface {
	// ContactByKey returns the contact stored under key, or nil when there is
	// none.
	ContactByKey(ctx context.Context, key string) (*domain.Contact, error)
	// Contacts returns all stored contacts ordered by key.
	Contacts(ctx context.Context) ([]ContactRecord, error)
	// UpsertContact stores contact under key, replacing any previous value.
	UpsertContact(ctx context.Context, key string, contact domain.Contact) error
	// DeleteContact removes the contact stored under key and reports whether
	// one existed.
	DeleteContact(ctx context.Context, key string) (bool, error)
}
