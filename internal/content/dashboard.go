package content

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dashboard gathers the admin dashboard counters concurrently. The counts are
// read independently and may not describe a single point in time.
func (s *Service) Dashboard(ctx context.Context) result.Result[domain.DashboardStats] {
	var (
		inquiries, pendingInquiries int64
		bookings, pendingBookings   int64
		stats                       domain.DashboardStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inquiries, err = s.storage.CountInquiries(gctx, "")

		return err
	})
	g.Go(func() (err error) {
		pendingInquiries, err = s.storage.CountInquiries(gctx, domain.RequestStatusPending)

		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.storage.CountBookings(gctx, "")

		return err
	})
	g.Go(func() (err error) {
		pendingBookings, err = s.storage.CountBookings(gctx, domain.RequestStatusPending)

		return err
	})
	g.Go(func() (err error) {
		stats.Packages, err = s.storage.CountTourPackages(gctx)

		return err
	})
	g.Go(func() (err error) {
		stats.Posts, err = s.storage.CountPosts(gctx)

		return err
	})
	g.Go(func() (err error) {
		stats.UnreadContacts, err = s.storage.CountContacts(gctx, true)

		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "could not gather dashboard stats", zap.Error(err))

		return result.Fail[domain.DashboardStats](serrors.Wrap(serrors.ErrInternal, err, "failed to fetch dashboard stats"))
	}

	stats.TotalInquiries = inquiries + bookings
	stats.PendingInquiries = pendingInquiries + pendingBookings

	return result.OK(stats, "")
}
