package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs (cache revalidation, notification
// emails). The job is inserted through the same database handle as the rest
// of the storage, so inside a transaction it only becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when
	// River skipped it as a duplicate of a unique job).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
