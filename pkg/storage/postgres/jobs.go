package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job (page revalidation, notification mail). Inside
// a transaction the job is inserted with InsertTx so it only becomes visible
// once the content change that triggered it commits. Outside a transaction
// it is inserted straight through the pool.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		client, err = river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river insert client: %w", err)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		client, err = river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river insert client: %w", err)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert %s job: unsupported db handle %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
