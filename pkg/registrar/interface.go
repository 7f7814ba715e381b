// Package registrar defines the interface used to read registrations and
// contact details from a domain registrar and to push contact updates to it.
package registrar

import (
	"context"
	"domainsync/pkg/domain"
)

// Client is the abstraction for domain registrars.
//
//go:generate mockgen -package mockregistrar -source=interface.go -destination=mock/mockregistrar.go *
type Client interface {
	// ListRegisteredDomains returns every domain registered with the
	// registrar. The listing is paged upstream; implementations drain all
	// pages before returning and fail as a whole if any page fails.
	ListRegisteredDomains(ctx context.Context) ([]domain.Registration, error)
	// GetDomainContacts returns the admin, registrant and tech contacts the
	// registrar holds for domainName.
	GetDomainContacts(ctx context.Context, domainName string) (domain.DomainContacts, error)
	// SetDomainContacts replaces all three contacts of domainName in a single
	// call.
	SetDomainContacts(ctx context.Context, domainName string, contacts domain.DomainContacts) error
}
