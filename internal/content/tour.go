package content

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"go.uber.org/zap"
)

func (s *Service) ListTourPackages(ctx context.Context,
	filter domain.TourPackageFilter) result.Result[[]domain.TourPackage] {
	return fetchList(ctx, Packages, func() ([]domain.TourPackage, error) {
		return s.storage.TourPackages(ctx, filter)
	})
}

func (s *Service) TourPackageByID(ctx context.Context, id int64) result.Result[domain.TourPackage] {
	return fetchOne(ctx, Packages, func() (*domain.TourPackage, error) {
		return s.storage.TourPackageByID(ctx, id)
	})
}

func (s *Service) TourPackageBySlug(ctx context.Context, slug string) result.Result[domain.TourPackage] {
	return fetchOne(ctx, Packages, func() (*domain.TourPackage, error) {
		return s.storage.TourPackageBySlug(ctx, slug)
	})
}

// checkDestination fails with BAD_REQUEST when a non-zero destination id does
// not reference an existing destination.
func checkDestination(ctx context.Context, st storage.DestinationStorage, id int64) error {
	if id == 0 {
		return nil
	}

	destination, err := st.DestinationByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "could not look up destination", zap.Int64("destinationId", id), zap.Error(err))

		return serrors.Wrap(serrors.ErrInternal, err, "failed to fetch destination")
	}
	if destination == nil {
		return serrors.With(serrors.ErrBadRequest, "destination does not exist")
	}

	return nil
}

func (s *Service) CreateTourPackage(ctx context.Context, in TourPackageInput) result.Result[domain.TourPackage] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.TourPackage](err)
	}
	if err := checkDestination(ctx, s.storage, in.DestinationID); err != nil {
		return result.Fail[domain.TourPackage](err)
	}

	created, err := s.storage.StoreTourPackage(ctx, in.toDomain())
	s.mutated(ctx, Packages, "create", err, in.Slug)
	if err != nil {
		return result.Fail[domain.TourPackage](s.writeFailed(ctx, Packages, "create", err))
	}

	return result.OK(*created, "package created")
}

func (s *Service) UpdateTourPackage(ctx context.Context,
	id int64,
	in TourPackageInput) result.Result[domain.TourPackage] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.TourPackage](err)
	}
	if err := checkDestination(ctx, s.storage, in.DestinationID); err != nil {
		return result.Fail[domain.TourPackage](err)
	}

	var oldSlug string
	var updated *domain.TourPackage
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.TourPackageByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound(Packages)
		}
		oldSlug = existing.Slug

		next := in.toDomain()
		next.ID = id
		updated, err = tx.UpdateTourPackage(ctx, next)
		if err == nil && updated == nil {
			return notFound(Packages)
		}

		return err
	})

	return finishUpdate(ctx, s, Packages, updated, err, in.Slug, oldSlug)
}

func (s *Service) DeleteTourPackage(ctx context.Context, id int64) result.Result[Deleted] {
	return remove(ctx, s, Packages, id, func() (*domain.TourPackage, error) {
		return s.storage.DeleteTourPackage(ctx, id)
	}, func(p *domain.TourPackage) string { return p.Slug })
}
