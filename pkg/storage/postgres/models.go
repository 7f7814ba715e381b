package postgres

import (
	"database/sql"
	"domainsync/pkg/domain"
	"domainsync/pkg/storage"
	"time"
)

// PgRegistration is the row of the registrations table.
type PgRegistration struct {
	DomainName   string    `db:"domain_name"`
	Expiry       time.Time `db:"expiry"`
	AutoRenew    bool      `db:"auto_renew"`
	TransferLock bool      `db:"transfer_lock"`

	Version   int64        `db:"version"    goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRegistration) ToStorage() storage.CachedRegistration {
	return storage.CachedRegistration{
		Registration: domain.Registration{
			DomainName:   p.DomainName,
			Expiry:       p.Expiry.UTC(),
			AutoRenew:    p.AutoRenew,
			TransferLock: p.TransferLock,
		},
		Version: p.Version,
	}
}

func (p *PgRegistration) FromDomain(reg domain.Registration) {
	*p = PgRegistration{
		DomainName:   reg.DomainName,
		Expiry:       reg.Expiry.UTC(),
		AutoRenew:    reg.AutoRenew,
		TransferLock: reg.TransferLock,
	}
}

// PgContact is the row of the contacts table. Every contact column is nullable
// so that an absent value survives a round trip distinct from an empty one.
type PgContact struct {
	ContactKey string `db:"contact_key"`

	AddressLine1     sql.NullString `db:"address_line1"`
	AddressLine2     sql.NullString `db:"address_line2"`
	City             sql.NullString `db:"city"`
	ContactType      sql.NullString `db:"contact_type"`
	CountryCode      sql.NullString `db:"country_code"`
	Email            sql.NullString `db:"email"`
	Fax              sql.NullString `db:"fax"`
	FirstName        sql.NullString `db:"first_name"`
	LastName         sql.NullString `db:"last_name"`
	OrganizationName sql.NullString `db:"organization_name"`
	PhoneNumber      sql.NullString `db:"phone_number"`
	State            sql.NullString `db:"state"`
	ZipCode          sql.NullString `db:"zip_code"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func (p *PgContact) ToDomain() domain.Contact {
	return domain.Contact{
		AddressLine1:     stringPtr(p.AddressLine1),
		AddressLine2:     stringPtr(p.AddressLine2),
		City:             stringPtr(p.City),
		ContactType:      stringPtr(p.ContactType),
		CountryCode:      stringPtr(p.CountryCode),
		Email:            stringPtr(p.Email),
		Fax:              stringPtr(p.Fax),
		FirstName:        stringPtr(p.FirstName),
		LastName:         stringPtr(p.LastName),
		OrganizationName: stringPtr(p.OrganizationName),
		PhoneNumber:      stringPtr(p.PhoneNumber),
		State:            stringPtr(p.State),
		ZipCode:          stringPtr(p.ZipCode),
	}
}

func (p *PgContact) FromDomain(key string, c domain.Contact) {
	*p = PgContact{
		ContactKey:       key,
		AddressLine1:     nullString(c.AddressLine1),
		AddressLine2:     nullString(c.AddressLine2),
		City:             nullString(c.City),
		ContactType:      nullString(c.ContactType),
		CountryCode:      nullString(c.CountryCode),
		Email:            nullString(c.Email),
		Fax:              nullString(c.Fax),
		FirstName:        nullString(c.FirstName),
		LastName:         nullString(c.LastName),
		OrganizationName: nullString(c.OrganizationName),
		PhoneNumber:      nullString(c.PhoneNumber),
		State:            nullString(c.State),
		ZipCode:          nullString(c.ZipCode),
	}
}
