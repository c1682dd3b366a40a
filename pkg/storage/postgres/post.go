package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	categoriesTable = "categories"
	postsTable      = "posts"
)

// Categories lists categories in creation order.
func (p *PgSQL) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoriesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgCategory).ToDomain), nil
}

func (p *PgSQL) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return p.categoryWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return p.categoryWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) categoryWhere(ctx context.Context, where goqu.Expression) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.From(categoriesTable).Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var in, out PgCategory
	in.FromDomain(category)
	if _, err := p.Builder.Insert(categoriesTable).
		Rows(in).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, categoriesTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var in, out PgCategory
	in.FromDomain(category)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(categoriesTable).
		Set(in).
		Where(goqu.I("id").Eq(category.ID)).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, categoriesTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) DeleteCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.Delete(categoriesTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete category in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Posts lists posts. Published listings are ordered newest publication first;
// the admin listing follows creation order.
func (p *PgSQL) Posts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	ds := p.Builder.From(postsTable)
	if filter.PublishedOnly {
		ds = ds.Where(goqu.I("published").IsTrue()).
			Order(goqu.I("published_at").Desc().NullsLast(), goqu.I("id").Desc())
	} else {
		ds = ds.Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	}
	if filter.CategorySlug != "" {
		ds = ds.Where(goqu.I("category_id").In(
			p.Builder.From(categoriesTable).
				Select("id").
				Where(goqu.I("slug").Eq(filter.CategorySlug)),
		))
	}
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgPost
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch posts from pg: %w", err)
	}

	return rowsToDomain(rows, (*PgPost).ToDomain), nil
}

func (p *PgSQL) PostByID(ctx context.Context, id int64) (*domain.Post, error) {
	return p.postWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) PostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return p.postWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) postWhere(ctx context.Context, where goqu.Expression) (*domain.Post, error) {
	var row PgPost
	found, err := p.Builder.From(postsTable).Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StorePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var in, out PgPost
	in.FromDomain(post)
	if _, err := p.Builder.Insert(postsTable).
		Rows(in).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, postsTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UpdatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var in, out PgPost
	in.FromDomain(post)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(postsTable).
		Set(in).
		Where(goqu.I("id").Eq(post.ID)).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, postsTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) DeletePost(ctx context.Context, id int64) (*domain.Post, error) {
	var row PgPost
	found, err := p.Builder.Delete(postsTable).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete post in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountPosts(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(postsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count posts in pg: %w", err)
	}

	return n, nil
}
