package storage

import (
	"context"
	"travel/pkg/domain"
)

// BookingStorage persists package booking requests.
type BookingStorage interface {
	StoreBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	// Bookings lists bookings newest first, optionally filtered by status.
	Bookings(ctx context.Context, status domain.RequestStatus) ([]domain.Booking, error)
	BookingByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateBookingStatus returns nil when the row does not exist.
	UpdateBookingStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.Booking, error)
	// DeleteBooking returns nil when the row did not exist.
	DeleteBooking(ctx context.Context, id int64) (*domain.Booking, error)
	// CountBookings counts bookings; an empty status counts all of them.
	CountBookings(ctx context.Context, status domain.RequestStatus) (int64, error)
}
