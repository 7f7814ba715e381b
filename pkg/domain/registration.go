package domain

import "time"

// Registration holds the registrar facts about a single domain that are cached
// between reconciliation cycles. DomainName is the identity key.
type Registration struct {
	// DomainName is the fully qualified name of the registered domain.
	DomainName string `json:"domainName"`
	// Expiry is when the registration expires at the registrar.
	Expiry time.Time `json:"expiry"`
	// AutoRenew reports whether the registrar renews the domain automatically.
	AutoRenew bool `json:"autoRenew"`
	// TransferLock reports whether the domain is locked against transfers.
	TransferLock bool `json:"transferLock"`
}

// Equal reports whether both registrations carry the same values for all four
// fields. Expiry is compared as an instant, so the same moment expressed in
// different locations is equal.
func (r Registration) Equal(other Registration) bool {
	return r.DomainName == other.DomainName &&
		r.Expiry.Equal(other.Expiry) &&
		r.AutoRenew == other.AutoRenew &&
		r.TransferLock == other.TransferLock
}

// Expired reports whether the registration expired more than grace before now.
func (r Registration) Expired(now time.Time, grace time.Duration) bool {
	return r.Expiry.Add(grace).Before(now)
}
