package storage

import (
	"context"
	"travel/pkg/domain"
)

// TourPackageStorage persists tour packages.
type TourPackageStorage interface {
	// TourPackages lists packages in creation order.
	TourPackages(ctx context.Context, filter domain.TourPackageFilter) ([]domain.TourPackage, error)
	TourPackageByID(ctx context.Context, id int64) (*domain.TourPackage, error)
	TourPackageBySlug(ctx context.Context, slug string) (*domain.TourPackage, error)
	StoreTourPackage(ctx context.Context, pkg domain.TourPackage) (*domain.TourPackage, error)
	// UpdateTourPackage returns nil when the row does not exist.
	UpdateTourPackage(ctx context.Context, pkg domain.TourPackage) (*domain.TourPackage, error)
	// DeleteTourPackage returns nil when the row did not exist.
	DeleteTourPackage(ctx context.Context, id int64) (*domain.TourPackage, error)
	// CountTourPackages counts all packages, active or not.
	CountTourPackages(ctx context.Context) (int64, error)
}
