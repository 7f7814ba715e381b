package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a river job through the current database handle.
//
// Inside a transaction the job is inserted with InsertTx, so a reconciliation
// cycle publishes its contact-sync jobs only together with the snapshot
// mutations that produced them. Outside a transaction the insert is immediately
// visible.
//
// The returned bool is false when river skipped the insert because a unique
// job with the same arguments is still pending.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	if tx, ok := p.DB.(*sql.Tx); ok {
		// an insert-only client does not need a database handle of its own
		riverClient, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = riverClient.InsertTx(ctx, tx, args, opts)
	} else {
		riverClient, cErr := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = riverClient.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
