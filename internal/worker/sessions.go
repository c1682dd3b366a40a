package worker

import (
	"context"
	"fmt"
	"travel/pkg/logger"
	"travel/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SessionPurger removes expired admin sessions.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionPurgeArgs is the periodic expired session purge.
type SessionPurgeArgs struct{}

func (SessionPurgeArgs) Kind() string { return "PurgeExpiredSessionsJob" }

type SessionPurgeWorker struct {
	river.WorkerDefaults[SessionPurgeArgs]

	sessions SessionPurger
}

func NewSessionPurgeWorker(sessions SessionPurger) *SessionPurgeWorker {
	return &SessionPurgeWorker{sessions: sessions}
}

func (w *SessionPurgeWorker) Work(ctx context.Context, job *river.Job[SessionPurgeArgs]) error {
	if w.sessions == nil {
		return nil
	}

	n, err := w.sessions.PurgeExpiredSessions(ctx)
	metrics.JobsProcessed.WithLabelValues(job.Kind, metrics.Outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("could not purge sessions: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "expired sessions purged", zap.Int64("sessions", n))
	}

	return nil
}
