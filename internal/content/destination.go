package content

import (
	"context"
	"errors"
	"travel/pkg/domain"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"
)

func (s *Service) ListDestinations(ctx context.Context,
	filter domain.DestinationFilter) result.Result[[]domain.Destination] {
	return fetchList(ctx, Destinations, func() ([]domain.Destination, error) {
		return s.storage.Destinations(ctx, filter)
	})
}

func (s *Service) DestinationByID(ctx context.Context, id int64) result.Result[domain.Destination] {
	return fetchOne(ctx, Destinations, func() (*domain.Destination, error) {
		return s.storage.DestinationByID(ctx, id)
	})
}

func (s *Service) DestinationBySlug(ctx context.Context, slug string) result.Result[domain.Destination] {
	return fetchOne(ctx, Destinations, func() (*domain.Destination, error) {
		return s.storage.DestinationBySlug(ctx, slug)
	})
}

func (s *Service) CreateDestination(ctx context.Context, in DestinationInput) result.Result[domain.Destination] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Destination](err)
	}

	created, err := s.storage.StoreDestination(ctx, in.toDomain())
	s.mutated(ctx, Destinations, "create", err, in.Slug)
	if err != nil {
		return result.Fail[domain.Destination](s.writeFailed(ctx, Destinations, "create", err))
	}

	return result.OK(*created, "destination created")
}

func (s *Service) UpdateDestination(ctx context.Context,
	id int64,
	in DestinationInput) result.Result[domain.Destination] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Destination](err)
	}

	var oldSlug string
	var updated *domain.Destination
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.DestinationByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound(Destinations)
		}
		oldSlug = existing.Slug

		next := in.toDomain()
		next.ID = id
		updated, err = tx.UpdateDestination(ctx, next)
		if err == nil && updated == nil {
			return notFound(Destinations)
		}

		return err
	})

	return finishUpdate(ctx, s, Destinations, updated, err, in.Slug, oldSlug)
}

func (s *Service) DeleteDestination(ctx context.Context, id int64) result.Result[Deleted] {
	return remove(ctx, s, Destinations, id, func() (*domain.Destination, error) {
		return s.storage.DeleteDestination(ctx, id)
	}, func(d *domain.Destination) string { return d.Slug })
}

// finishUpdate turns the outcome of an update transaction into a result.
func finishUpdate[T any](ctx context.Context,
	s *Service,
	e Entity,
	updated *T,
	err error,
	slugs ...string) result.Result[T] {
	if errors.Is(err, serrors.ErrNotFound) {
		return result.Fail[T](err)
	}
	s.mutated(ctx, e, "update", err, slugs...)
	if err != nil {
		return result.Fail[T](s.writeFailed(ctx, e, "update", err))
	}

	return result.OK(*updated, e.name+" updated")
}
