package worker

import (
	"context"
	"fmt"
	"travel/internal/content"
	"travel/pkg/logger"
	"travel/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Purger drops cached pages by topic.
type Purger interface {
	Purge(ctx context.Context, topics ...string) (int64, error)
}

// RevalidateWorker purges the page cache for the topics touched by a content
// mutation. A failed purge is retried by river; stale pages expire on their
// own in the meantime.
type RevalidateWorker struct {
	river.WorkerDefaults[content.RevalidateArgs]

	cache Purger
}

func NewRevalidateWorker(cache Purger) *RevalidateWorker {
	return &RevalidateWorker{cache: cache}
}

func (w *RevalidateWorker) Work(ctx context.Context, job *river.Job[content.RevalidateArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Strings("topics", job.Args.Topics))

	if w.cache == nil {
		metrics.JobsProcessed.WithLabelValues(job.Kind, "skipped").Inc()

		return nil
	}

	n, err := w.cache.Purge(ctx, job.Args.Topics...)
	metrics.JobsProcessed.WithLabelValues(job.Kind, metrics.Outcome(err)).Inc()
	if err != nil {
		logger.Error(ctx, "could not purge page cache", zap.Error(err))

		return fmt.Errorf("could not purge page cache: %w", err)
	}

	logger.Debug(ctx, "page cache purged", zap.Int64("pages", n))

	return nil
}
