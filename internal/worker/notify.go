package worker

import (
	"context"
	"errors"
	"fmt"
	"travel/internal/content"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/mailer"
	"travel/pkg/metrics"
	"travel/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Sender delivers an email.
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ContactNotificationWorker emails the site owner about a contact form
// submission.
type ContactNotificationWorker struct {
	river.WorkerDefaults[content.ContactNotificationArgs]

	storage storage.Storage
	mailer  Sender
	to      string
}

func NewContactNotificationWorker(st storage.Storage, m Sender, to string) *ContactNotificationWorker {
	return &ContactNotificationWorker{storage: st, mailer: m, to: to}
}

func (w *ContactNotificationWorker) Work(ctx context.Context, job *river.Job[content.ContactNotificationArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("contactId", job.Args.ContactID))

	err := w.notify(ctx, job.Args.ContactID)
	metrics.JobsProcessed.WithLabelValues(job.Kind, metrics.Outcome(err)).Inc()

	var cancel *river.JobCancelError
	switch {
	case err == nil:
		logger.Info(ctx, "contact notification sent")

		return nil
	case errors.As(err, &cancel):
		logger.Warn(ctx, "contact notification dropped", zap.Error(err))

		return err
	default:
		logger.Error(ctx, "could not send contact notification", zap.Error(err))

		return err
	}
}

func (w *ContactNotificationWorker) notify(ctx context.Context, id int64) error {
	if w.mailer == nil {
		return river.JobCancel(mailer.ErrNotConfigured) //nolint: wrapcheck
	}

	contact, err := w.storage.ContactByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not fetch contact submission: %w", err)
	}
	if contact == nil {
		return river.JobCancel(fmt.Errorf("contact submission %d no longer exists", id)) //nolint: wrapcheck
	}

	settings, err := w.storage.Settings(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}
	if settings == nil {
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	to := w.to
	if to == "" {
		to = settings.ContactEmail
	}

	err = w.mailer.Send(ctx, mailer.ContactNotification(*contact, settings.SiteName, to))
	if errors.Is(err, mailer.ErrNotConfigured) {
		return river.JobCancel(err) //nolint: wrapcheck
	}
	if err != nil {
		return fmt.Errorf("could not send notification: %w", err)
	}

	return nil
}
