package content

import (
	"context"
	"errors"
	"travel/pkg/domain"
	"travel/pkg/metrics"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"
)

// SubmitBooking stores a pending booking request for the active package
// identified by packageSlug.
func (s *Service) SubmitBooking(ctx context.Context, packageSlug string, in BookingInput) result.Result[domain.Booking] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Booking](err)
	}

	var created *domain.Booking
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		pkg, err := tx.TourPackageBySlug(ctx, packageSlug)
		if err != nil {
			return err
		}
		if pkg == nil || !pkg.Active {
			return notFound(Packages)
		}

		booking := in.toDomain(pkg.ID)
		if booking.TravelDate.Before(today(s.now())) {
			return serrors.With(serrors.ErrBadRequest, "Travel date must not be in the past")
		}

		created, err = tx.StoreBooking(ctx, booking)

		return err
	})

	var serr *serrors.Error
	if errors.As(err, &serr) {
		return result.Fail[domain.Booking](err)
	}
	metrics.ContentMutations.WithLabelValues(Bookings.key, "create", metrics.Outcome(err)).Inc()
	if err != nil {
		return result.Fail[domain.Booking](s.writeFailed(ctx, Bookings, "submit", err))
	}
	s.invalidate(ctx, Bookings.AdminTopic(), TopicDashboard)

	return result.OK(*created, "booking submitted")
}

func (s *Service) ListBookings(ctx context.Context, status domain.RequestStatus) result.Result[[]domain.Booking] {
	return fetchList(ctx, Bookings, func() ([]domain.Booking, error) {
		return s.storage.Bookings(ctx, status)
	})
}

func (s *Service) BookingByID(ctx context.Context, id int64) result.Result[domain.Booking] {
	return fetchOne(ctx, Bookings, func() (*domain.Booking, error) {
		return s.storage.BookingByID(ctx, id)
	})
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id int64, in StatusInput) result.Result[domain.Booking] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Booking](err)
	}

	updated, err := s.storage.UpdateBookingStatus(ctx, id, in.Status)
	if err == nil && updated == nil {
		return result.Fail[domain.Booking](notFound(Bookings))
	}

	return finishUpdate(ctx, s, Bookings, updated, err)
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) result.Result[Deleted] {
	return remove[domain.Booking](ctx, s, Bookings, id, func() (*domain.Booking, error) {
		return s.storage.DeleteBooking(ctx, id)
	}, nil)
}
