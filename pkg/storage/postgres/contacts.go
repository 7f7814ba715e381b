package postgres

import (
	"context"
	"domainsync/pkg/domain"
	"domainsync/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	contactsTable = "contacts"
)

// contactColumns returns the writable columns of a contact row.
func contactColumns(row PgContact) goqu.Record {
	return goqu.Record{
		"address_line1":     row.AddressLine1,
		"address_line2":     row.AddressLine2,
		"city":              row.City,
		"contact_type":      row.ContactType,
		"country_code":      row.CountryCode,
		"email":             row.Email,
		"fax":               row.Fax,
		"first_name":        row.FirstName,
		"last_name":         row.LastName,
		"organization_name": row.OrganizationName,
		"phone_number":      row.PhoneNumber,
		"state":             row.State,
		"zip_code":          row.ZipCode,
	}
}

// ContactByKey returns the contact stored under key, or nil when not found.
func (p *PgSQL) ContactByKey(ctx context.Context, key string) (*domain.Contact, error) {
	var row PgContact
	found, err := p.Builder.From(contactsTable).
		Where(goqu.I("contact_key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contact by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	c := row.ToDomain()

	return &c, nil
}

// Contacts returns all stored contacts ordered by key.
func (p *PgSQL) Contacts(ctx context.Context) ([]storage.ContactRecord, error) {
	var rows []PgContact
	if err := p.Builder.From(contactsTable).
		Order(goqu.I("contact_key").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch contacts from pg: %w", err)
	}

	out := make([]storage.ContactRecord, 0, len(rows))
	for i := range rows {
		out = append(out, storage.ContactRecord{Key: rows[i].ContactKey, Contact: rows[i].ToDomain()})
	}

	return out, nil
}

// UpsertContact inserts or replaces the contact stored under key.
func (p *PgSQL) UpsertContact(ctx context.Context, key string, contact domain.Contact) error {
	var row PgContact
	row.FromDomain(key, contact)

	insert := contactColumns(row)
	insert["contact_key"] = key

	update := contactColumns(row)
	update["updated_at"] = goqu.L("CURRENT_TIMESTAMP")

	if _, err := p.Builder.Insert(contactsTable).
		Rows(insert).
		OnConflict(goqu.DoUpdate("contact_key", update)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert contact into pg: %w", err)
	}

	return nil
}

// DeleteContact removes the contact stored under key.
func (p *PgSQL) DeleteContact(ctx context.Context, key string) (bool, error) {
	res, err := p.Builder.Delete(contactsTable).
		Where(goqu.I("contact_key").Eq(key)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete contact from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}
