package contactsync

import (
	"context"
	"domainsync/pkg/domain"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"
	"errors"
	"fmt"
)

// ErrNoContact is returned when neither a domain-specific contact nor the
// default contact is configured. It is also an serrors.ErrNotFound.
var ErrNoContact = errors.New("no contact configured")

// Source tells where an expected contact was found.
type Source string

const (
	// SourceDomain means the contact is stored under the domain name.
	SourceDomain Source = "domain"
	// SourceDefault means the domain has no contact and the default was used.
	SourceDefault Source = "default"
)

// Decision is the result of comparing expected and actual contacts.
type Decision string

const (
	// DecisionSkip means the registrar already holds the expected contacts.
	DecisionSkip Decision = "skip"
	// DecisionApply means the registrar must be updated.
	DecisionApply Decision = "apply"
)

// ResolveExpected returns the contact a domain should carry in all three
// roles. The domain-specific entry wins; otherwise the default entry is used.
func ResolveExpected(ctx context.Context,
	store storage.ContactStorage,
	domainName string) (domain.Contact, Source, error) {
	specific, err := store.ContactByKey(ctx, domainName)
	if err != nil {
		return domain.Contact{}, "", fmt.Errorf("could not get contact for domain: %w", err)
	}
	if specific != nil {
		return *specific, SourceDomain, nil
	}

	fallback, err := store.ContactByKey(ctx, storage.DefaultContactKey)
	if err != nil {
		return domain.Contact{}, "", fmt.Errorf("could not get default contact: %w", err)
	}
	if fallback != nil {
		return *fallback, SourceDefault, nil
	}

	return domain.Contact{}, "", serrors.Wrap(serrors.ErrNotFound, ErrNoContact, "domain %q", domainName)
}

// Decide returns DecisionSkip when every role of actual equals expected and
// DecisionApply otherwise.
func Decide(expected, actual domain.DomainContacts) Decision {
	if expected.Equal(actual) {
		return DecisionSkip
	}

	return DecisionApply
}
