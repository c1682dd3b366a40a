package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const destinationsTable = "destinations"

// Destinations lists destinations in creation order.
func (p *PgSQL) Destinations(ctx context.Context, filter domain.DestinationFilter) ([]domain.Destination, error) {
	var w []goqu.Expression
	if filter.ActiveOnly {
		w = append(w, goqu.I("active").IsTrue())
	}
	if filter.FeaturedOnly {
		w = append(w, goqu.I("featured").IsTrue())
	}

	var rows []PgDestination
	if err := p.Builder.From(destinationsTable).
		Where(w...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch destinations from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgDestination).ToDomain), nil
}

func (p *PgSQL) DestinationByID(ctx context.Context, id int64) (*domain.Destination, error) {
	return p.destinationWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) DestinationBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	return p.destinationWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) destinationWhere(ctx context.Context, where goqu.Expression) (*domain.Destination, error) {
	var row PgDestination
	found, err := p.Builder.From(destinationsTable).Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch destination from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreDestination(ctx context.Context, destination domain.Destination) (*domain.Destination, error) {
	var in, out PgDestination
	in.FromDomain(destination)
	if _, err := p.Builder.Insert(destinationsTable).
		Rows(in).
		Returning(&PgDestination{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, destinationsTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UpdateDestination(ctx context.Context, destination domain.Destination) (*domain.Destination, error) {
	var in, out PgDestination
	in.FromDomain(destination)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(destinationsTable).
		Set(in).
		Where(goqu.I("id").Eq(destination.ID)).
		Returning(&PgDestination{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, destinationsTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) DeleteDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	var row PgDestination
	found, err := p.Builder.Delete(destinationsTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgDestination{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete destination in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
