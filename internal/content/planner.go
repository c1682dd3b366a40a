package content

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/metrics"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (s *Service) ListPlannerOptions(ctx context.Context,
	filter domain.PlannerOptionFilter) result.Result[[]domain.PlannerOption] {
	return fetchList(ctx, PlannerOptions, func() ([]domain.PlannerOption, error) {
		return s.storage.PlannerOptions(ctx, filter)
	})
}

func (s *Service) PlannerOptionByID(ctx context.Context, id int64) result.Result[domain.PlannerOption] {
	return fetchOne(ctx, PlannerOptions, func() (*domain.PlannerOption, error) {
		return s.storage.PlannerOptionByID(ctx, id)
	})
}

func (s *Service) CreatePlannerOption(ctx context.Context,
	in PlannerOptionInput) result.Result[domain.PlannerOption] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.PlannerOption](err)
	}

	created, err := s.storage.StorePlannerOption(ctx, in.toDomain())
	s.mutated(ctx, PlannerOptions, "create", err)
	if err != nil {
		return result.Fail[domain.PlannerOption](s.writeFailed(ctx, PlannerOptions, "create", err))
	}

	return result.OK(*created, "planner option created")
}

func (s *Service) UpdatePlannerOption(ctx context.Context,
	id int64,
	in PlannerOptionInput) result.Result[domain.PlannerOption] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.PlannerOption](err)
	}

	next := in.toDomain()
	next.ID = id
	updated, err := s.storage.UpdatePlannerOption(ctx, next)
	if err == nil && updated == nil {
		return result.Fail[domain.PlannerOption](notFound(PlannerOptions))
	}

	return finishUpdate(ctx, s, PlannerOptions, updated, err)
}

func (s *Service) DeletePlannerOption(ctx context.Context, id int64) result.Result[Deleted] {
	return remove[domain.PlannerOption](ctx, s, PlannerOptions, id, func() (*domain.PlannerOption, error) {
		return s.storage.DeletePlannerOption(ctx, id)
	}, nil)
}

const maxReorderWorkers = 8

// ReorderPlannerOptions assigns new positions. The updates run concurrently
// and are not transactional: when one fails the others may still have been
// applied and the whole call is reported as failed.
func (s *Service) ReorderPlannerOptions(ctx context.Context, in ReorderInput) result.Result[[]domain.OptionPosition] {
	if err := s.validate(&in); err != nil {
		return result.Fail[[]domain.OptionPosition](err)
	}

	var g errgroup.Group
	g.SetLimit(maxReorderWorkers)
	for _, item := range in.Items {
		g.Go(func() error {
			return s.storage.SetPlannerOptionPosition(ctx, item.ID, item.Position)
		})
	}

	err := g.Wait()
	s.mutated(ctx, PlannerOptions, "reorder", err)
	if err != nil {
		logger.Error(ctx, "could not reorder planner options", zap.Int("items", len(in.Items)), zap.Error(err))

		return result.Fail[[]domain.OptionPosition](
			serrors.Wrap(serrors.ErrInternal, err, "failed to reorder planner options"))
	}

	return result.OK(in.Items, "planner options reordered")
}

// SubmitInquiry stores a trip planner submission as pending.
func (s *Service) SubmitInquiry(ctx context.Context, in InquiryInput) result.Result[domain.Inquiry] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Inquiry](err)
	}

	created, err := s.storage.StoreInquiry(ctx, in.toDomain())
	metrics.ContentMutations.WithLabelValues(Inquiries.key, "create", metrics.Outcome(err)).Inc()
	if err != nil {
		return result.Fail[domain.Inquiry](s.writeFailed(ctx, Inquiries, "submit", err))
	}
	s.invalidate(ctx, Inquiries.AdminTopic(), TopicDashboard)

	return result.OK(*created, "inquiry submitted")
}

func (s *Service) ListInquiries(ctx context.Context, status domain.RequestStatus) result.Result[[]domain.Inquiry] {
	return fetchList(ctx, Inquiries, func() ([]domain.Inquiry, error) {
		return s.storage.Inquiries(ctx, status)
	})
}

func (s *Service) InquiryByID(ctx context.Context, id int64) result.Result[domain.Inquiry] {
	return fetchOne(ctx, Inquiries, func() (*domain.Inquiry, error) {
		return s.storage.InquiryByID(ctx, id)
	})
}

func (s *Service) UpdateInquiryStatus(ctx context.Context, id int64, in StatusInput) result.Result[domain.Inquiry] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Inquiry](err)
	}

	updated, err := s.storage.UpdateInquiryStatus(ctx, id, in.Status)
	if err == nil && updated == nil {
		return result.Fail[domain.Inquiry](notFound(Inquiries))
	}

	return finishUpdate(ctx, s, Inquiries, updated, err)
}

func (s *Service) DeleteInquiry(ctx context.Context, id int64) result.Result[Deleted] {
	return remove[domain.Inquiry](ctx, s, Inquiries, id, func() (*domain.Inquiry, error) {
		return s.storage.DeleteInquiry(ctx, id)
	}, nil)
}
