package postgres

import (
	"context"
	"database/sql"
	"domainsync/pkg/domain"
	"domainsync/pkg/serrors"
	"domainsync/pkg/storage"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	registrationsTable = "registrations"

	uniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// expectOneRow turns a write that matched no row into a conflict error.
func expectOneRow(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if n == 0 {
		return serrors.With(serrors.ErrConflict, format, args...)
	}

	return nil
}

// Registrations returns every cached registration ordered by domain name.
func (p *PgSQL) Registrations(ctx context.Context) ([]storage.CachedRegistration, error) {
	var rows []PgRegistration
	if err := p.Builder.From(registrationsTable).
		Order(goqu.I("domain_name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch registrations from pg: %w", err)
	}

	out := make([]storage.CachedRegistration, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToStorage())
	}

	return out, nil
}

// InsertRegistration stores a new registration with version 1.
func (p *PgSQL) InsertRegistration(ctx context.Context, reg domain.Registration) error {
	var row PgRegistration
	row.FromDomain(reg)

	if _, err := p.Builder.Insert(registrationsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		if isUniqueViolation(err) {
			return serrors.Wrap(serrors.ErrConflict, err, "registration %q already cached", reg.DomainName)
		}

		return fmt.Errorf("could not insert registration into pg: %w", err)
	}

	return nil
}

// UpdateRegistration replaces the cached facts of a registration when the
// stored version matches, bumping the version and updated_at.
func (p *PgSQL) UpdateRegistration(ctx context.Context, reg domain.Registration, version int64) error {
	res, err := p.Builder.Update(registrationsTable).
		Set(goqu.Record{
			"expiry":        reg.Expiry.UTC(),
			"auto_renew":    reg.AutoRenew,
			"transfer_lock": reg.TransferLock,
			"version":       goqu.L("version + 1"),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("domain_name").Eq(reg.DomainName),
			goqu.I("version").Eq(version),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update registration in pg: %w", err)
	}

	return expectOneRow(res, "registration %q at version %d not found", reg.DomainName, version)
}

// DeleteRegistration removes a cached registration by name and version.
func (p *PgSQL) DeleteRegistration(ctx context.Context, domainName string, version int64) error {
	res, err := p.Builder.Delete(registrationsTable).
		Where(
			goqu.I("domain_name").Eq(domainName),
			goqu.I("version").Eq(version),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete registration from pg: %w", err)
	}

	return expectOneRow(res, "registration %q at version %d not found", domainName, version)
}
