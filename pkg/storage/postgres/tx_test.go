package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"domainsync/pkg/domain"
	"domainsync/pkg/storage"
	"domainsync/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func cachedNames(t *testing.T, pg *postgres.PgSQL) []string {
	t.Helper()
	regs, err := pg.Registrations(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(regs))
	for _, r := range regs {
		names = append(names, r.DomainName)
	}

	return names
}

func testRegistration(name string) domain.Registration {
	return domain.Registration{
		DomainName:   name,
		Expiry:       time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC),
		AutoRenew:    true,
		TransferLock: true,
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsRegistration(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, txStorage.InsertRegistration(ctx, testRegistration("commit.com")))

	// not visible outside the transaction before commit
	require.Empty(t, cachedNames(t, pg))

	require.NoError(t, txStorage.Commit())
	require.Equal(t, []string{"commit.com"}, cachedNames(t, pg))
}

func TestPgSQL_Rollback_DiscardsRegistration(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, txStorage.InsertRegistration(ctx, testRegistration("rollback.com")))
	require.NoError(t, txStorage.Rollback())

	require.Empty(t, cachedNames(t, pg))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.InsertRegistration(ctx, testRegistration("a.com"))
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a.com"}, cachedNames(t, pg))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, s.InsertRegistration(ctx, testRegistration("b.com")))

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, []string{"a.com"}, cachedNames(t, pg))
}
