package storage

import (
	"context"
	"travel/pkg/domain"
)

// CategoryStorage persists blog categories.
type CategoryStorage interface {
	// Categories lists categories in creation order.
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// UpdateCategory returns nil when the row does not exist.
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// DeleteCategory returns nil when the row did not exist. Posts of the
	// category become uncategorized.
	DeleteCategory(ctx context.Context, id int64) (*domain.Category, error)
}

// PostStorage persists blog posts.
type PostStorage interface {
	// Posts lists posts. Published-only listings are ordered newest first by
	// publication time, other listings follow creation order.
	Posts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	PostByID(ctx context.Context, id int64) (*domain.Post, error)
	PostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	StorePost(ctx context.Context, post domain.Post) (*domain.Post, error)
	// UpdatePost returns nil when the row does not exist.
	UpdatePost(ctx context.Context, post domain.Post) (*domain.Post, error)
	// DeletePost returns nil when the row did not exist.
	DeletePost(ctx context.Context, id int64) (*domain.Post, error)
	// CountPosts counts all posts, published or not.
	CountPosts(ctx context.Context) (int64, error)
}
