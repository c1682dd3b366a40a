package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const tourPackagesTable = "tour_packages"

// TourPackages lists packages in creation order.
func (p *PgSQL) TourPackages(ctx context.Context, filter domain.TourPackageFilter) ([]domain.TourPackage, error) {
	var w []goqu.Expression
	if filter.ActiveOnly {
		w = append(w, goqu.I("active").IsTrue())
	}
	if filter.FeaturedOnly {
		w = append(w, goqu.I("featured").IsTrue())
	}
	if filter.DestinationID > 0 {
		w = append(w, goqu.I("destination_id").Eq(filter.DestinationID))
	}

	var rows []PgTourPackage
	if err := p.Builder.From(tourPackagesTable).
		Where(w...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tour packages from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgTourPackage).ToDomain), nil
}

func (p *PgSQL) TourPackageByID(ctx context.Context, id int64) (*domain.TourPackage, error) {
	return p.tourPackageWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) TourPackageBySlug(ctx context.Context, slug string) (*domain.TourPackage, error) {
	return p.tourPackageWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) tourPackageWhere(ctx context.Context, where goqu.Expression) (*domain.TourPackage, error) {
	var row PgTourPackage
	found, err := p.Builder.From(tourPackagesTable).Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tour package from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreTourPackage(ctx context.Context, pkg domain.TourPackage) (*domain.TourPackage, error) {
	var in, out PgTourPackage
	in.FromDomain(pkg)
	if _, err := p.Builder.Insert(tourPackagesTable).
		Rows(in).
		Returning(&PgTourPackage{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, tourPackagesTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UpdateTourPackage(ctx context.Context, pkg domain.TourPackage) (*domain.TourPackage, error) {
	var in, out PgTourPackage
	in.FromDomain(pkg)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(tourPackagesTable).
		Set(in).
		Where(goqu.I("id").Eq(pkg.ID)).
		Returning(&PgTourPackage{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, tourPackagesTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) DeleteTourPackage(ctx context.Context, id int64) (*domain.TourPackage, error) {
	var row PgTourPackage
	found, err := p.Builder.Delete(tourPackagesTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgTourPackage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete tour package in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountTourPackages(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(tourPackagesTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count tour packages in pg: %w", err)
	}

	return n, nil
}
