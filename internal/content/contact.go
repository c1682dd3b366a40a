package content

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/metrics"
	"travel/pkg/result"

	"go.uber.org/zap"
)

// SubmitContact stores a contact form message and schedules the notification
// email. A failed enqueue is logged only; the message is already stored.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) result.Result[domain.ContactSubmission] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.ContactSubmission](err)
	}

	created, err := s.storage.StoreContact(ctx, in.toDomain())
	metrics.ContentMutations.WithLabelValues(Contacts.key, "create", metrics.Outcome(err)).Inc()
	if err != nil {
		return result.Fail[domain.ContactSubmission](s.writeFailed(ctx, Contacts, "submit", err))
	}

	if _, err := s.storage.AddJob(ctx, ContactNotificationArgs{ContactID: created.ID}, nil); err != nil {
		logger.Warn(ctx, "could not enqueue contact notification", zap.Int64("contactId", created.ID), zap.Error(err))
	}
	s.invalidate(ctx, Contacts.AdminTopic(), TopicDashboard)

	return result.OK(*created, "message sent")
}

func (s *Service) ListContacts(ctx context.Context, unreadOnly bool) result.Result[[]domain.ContactSubmission] {
	return fetchList(ctx, Contacts, func() ([]domain.ContactSubmission, error) {
		return s.storage.Contacts(ctx, unreadOnly)
	})
}

func (s *Service) ContactByID(ctx context.Context, id int64) result.Result[domain.ContactSubmission] {
	return fetchOne(ctx, Contacts, func() (*domain.ContactSubmission, error) {
		return s.storage.ContactByID(ctx, id)
	})
}

func (s *Service) MarkContactRead(ctx context.Context, id int64, read bool) result.Result[domain.ContactSubmission] {
	updated, err := s.storage.MarkContactRead(ctx, id, read)
	if err == nil && updated == nil {
		return result.Fail[domain.ContactSubmission](notFound(Contacts))
	}

	return finishUpdate(ctx, s, Contacts, updated, err)
}

func (s *Service) DeleteContact(ctx context.Context, id int64) result.Result[Deleted] {
	return remove[domain.ContactSubmission](ctx, s, Contacts, id, func() (*domain.ContactSubmission, error) {
		return s.storage.DeleteContact(ctx, id)
	}, nil)
}
