package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const bookingsTable = "bookings"

func (p *PgSQL) StoreBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	var in, out PgBooking
	in.FromDomain(booking)
	if _, err := p.Builder.Insert(bookingsTable).
		Rows(in).
		Returning(&PgBooking{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, bookingsTable, "store")
	}

	return out.ToDomain(), nil
}

// Bookings lists bookings in creation order.
func (p *PgSQL) Bookings(ctx context.Context, status domain.RequestStatus) ([]domain.Booking, error) {
	ds := p.Builder.From(bookingsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(status)))
	}

	var rows []PgBooking
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch bookings from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgBooking).ToDomain), nil
}

func (p *PgSQL) BookingByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.From(bookingsTable).Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch booking from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateBookingStatus(ctx context.Context,
	id int64,
	status domain.RequestStatus) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.Update(bookingsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgBooking{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update booking status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.Delete(bookingsTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgBooking{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete booking in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountBookings(ctx context.Context, status domain.RequestStatus) (int64, error) {
	ds := p.Builder.From(bookingsTable)
	if status != "" {
		ds = ds.Where(goqu.I("status").Eq(string(status)))
	}
	n, err := ds.CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count bookings in pg: %w", err)
	}

	return n, nil
}
