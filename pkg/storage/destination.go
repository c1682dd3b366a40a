package storage

import (
	"context"
	"travel/pkg/domain"
)

// DestinationStorage persists destinations.
type DestinationStorage interface {
	// Destinations lists destinations in creation order.
	Destinations(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error)
	DestinationByID(ctx context.Context, id int64) (*domain.Destination, error)
	DestinationBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	// StoreDestination inserts a destination and returns the stored row.
	StoreDestination(ctx context.Context, destination domain.Destination) (*domain.Destination, error)
	// UpdateDestination overwrites the row with destination.ID, refreshing
	// updated_at. Returns nil when the row does not exist.
	UpdateDestination(ctx context.Context, destination domain.Destination) (*domain.Destination, error)
	// DeleteDestination removes the row and returns it, or nil when it did not exist.
	DeleteDestination(ctx context.Context, id int64) (*domain.Destination, error)
}
