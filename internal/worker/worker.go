// Package worker runs the background jobs of the service on river: cache
// revalidation after content changes, contact form notifications and the
// periodic purge of expired admin sessions.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"travel/pkg/logger"
	"travel/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

type Options struct {
	// MaxWorkers bounds the jobs processed concurrently.
	MaxWorkers int
	// NotifyTo receives contact notifications; the site contact email is used
	// when empty.
	NotifyTo string
	// SessionPurgeInterval is the period of the expired session purge.
	SessionPurgeInterval time.Duration
}

type Deps struct {
	Storage  storage.Storage
	Cache    Purger
	Mailer   Sender
	Sessions SessionPurger
}

// Start registers the workers and starts processing jobs until ctx is done.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 10
	}
	if opts.SessionPurgeInterval <= 0 {
		opts.SessionPurgeInterval = time.Hour
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRevalidateWorker(deps.Cache))
	river.AddWorker(workers, NewContactNotificationWorker(deps.Storage, deps.Mailer, opts.NotifyTo))
	river.AddWorker(workers, NewSessionPurgeWorker(deps.Sessions))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.SessionPurgeInterval),
				func() (river.JobArgs, *river.InsertOpts) { return SessionPurgeArgs{}, nil },
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
