package content

import (
	"context"
	"strings"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	"unicode/utf8"

	"go.uber.org/zap"
)

const excerptLength = 200

func (s *Service) ListCategories(ctx context.Context) result.Result[[]domain.Category] {
	return fetchList(ctx, Categories, func() ([]domain.Category, error) {
		return s.storage.Categories(ctx)
	})
}

func (s *Service) CategoryByID(ctx context.Context, id int64) result.Result[domain.Category] {
	return fetchOne(ctx, Categories, func() (*domain.Category, error) {
		return s.storage.CategoryByID(ctx, id)
	})
}

func (s *Service) CategoryBySlug(ctx context.Context, slug string) result.Result[domain.Category] {
	return fetchOne(ctx, Categories, func() (*domain.Category, error) {
		return s.storage.CategoryBySlug(ctx, slug)
	})
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) result.Result[domain.Category] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Category](err)
	}

	created, err := s.storage.StoreCategory(ctx, in.toDomain())
	s.mutated(ctx, Categories, "create", err, in.Slug)
	if err != nil {
		return result.Fail[domain.Category](s.writeFailed(ctx, Categories, "create", err))
	}

	return result.OK(*created, "category created")
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) result.Result[domain.Category] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Category](err)
	}

	var oldSlug string
	var updated *domain.Category
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.CategoryByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound(Categories)
		}
		oldSlug = existing.Slug

		next := in.toDomain()
		next.ID = id
		updated, err = tx.UpdateCategory(ctx, next)
		if err == nil && updated == nil {
			return notFound(Categories)
		}

		return err
	})

	return finishUpdate(ctx, s, Categories, updated, err, in.Slug, oldSlug)
}

// DeleteCategory removes a category. Its posts become uncategorized, so the
// post listings are invalidated as well.
func (s *Service) DeleteCategory(ctx context.Context, id int64) result.Result[Deleted] {
	res := remove(ctx, s, Categories, id, func() (*domain.Category, error) {
		return s.storage.DeleteCategory(ctx, id)
	}, func(c *domain.Category) string { return c.Slug })
	if res.Success() {
		s.invalidate(ctx, Posts.ListTopic(), Posts.AdminTopic())
	}

	return res
}

func (s *Service) ListPosts(ctx context.Context, filter domain.PostFilter) result.Result[[]domain.Post] {
	return fetchList(ctx, Posts, func() ([]domain.Post, error) {
		return s.storage.Posts(ctx, filter)
	})
}

func (s *Service) PostByID(ctx context.Context, id int64) result.Result[domain.Post] {
	return fetchOne(ctx, Posts, func() (*domain.Post, error) {
		return s.storage.PostByID(ctx, id)
	})
}

// PostBySlug looks a post up by slug. With publishedOnly set, drafts are
// reported as NOT_FOUND.
func (s *Service) PostBySlug(ctx context.Context, slug string, publishedOnly bool) result.Result[domain.Post] {
	return fetchOne(ctx, Posts, func() (*domain.Post, error) {
		post, err := s.storage.PostBySlug(ctx, slug)
		if err != nil || post == nil || (publishedOnly && !post.Published) {
			return nil, err
		}

		return post, nil
	})
}

func checkCategory(ctx context.Context, st storage.CategoryStorage, id int64) error {
	if id == 0 {
		return nil
	}

	category, err := st.CategoryByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "could not look up category", zap.Int64("categoryId", id), zap.Error(err))

		return serrors.Wrap(serrors.ErrInternal, err, "failed to fetch category")
	}
	if category == nil {
		return serrors.With(serrors.ErrBadRequest, "category does not exist")
	}

	return nil
}

// preparePost sanitizes the content and fills the derived fields. previous is
// the stored post on updates and nil on creates.
func (s *Service) preparePost(in PostInput, previous *domain.Post) domain.Post {
	post := in.toDomain()
	post.Content = s.sanitizer.Sanitize(post.Content)
	if post.Excerpt == "" {
		post.Excerpt = s.excerpt(post.Content)
	}

	if post.Published && post.PublishedAt.IsZero() {
		if previous != nil && !previous.PublishedAt.IsZero() {
			post.PublishedAt = previous.PublishedAt
		} else {
			post.PublishedAt = s.now().UTC()
		}
	}

	return post
}

// excerpt derives a plain text teaser from sanitized HTML.
func (s *Service) excerpt(html string) string {
	text := strings.Join(strings.Fields(s.stripper.Sanitize(html)), " ")
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:excerptLength])
	if i := strings.LastIndexByte(cut, ' '); i > excerptLength/2 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,.;:") + "…"
}

func (s *Service) CreatePost(ctx context.Context, in PostInput) result.Result[domain.Post] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Post](err)
	}
	if err := checkCategory(ctx, s.storage, in.CategoryID); err != nil {
		return result.Fail[domain.Post](err)
	}

	created, err := s.storage.StorePost(ctx, s.preparePost(in, nil))
	s.mutated(ctx, Posts, "create", err, in.Slug)
	if err != nil {
		return result.Fail[domain.Post](s.writeFailed(ctx, Posts, "create", err))
	}

	return result.OK(*created, "post created")
}

func (s *Service) UpdatePost(ctx context.Context, id int64, in PostInput) result.Result[domain.Post] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Post](err)
	}
	if err := checkCategory(ctx, s.storage, in.CategoryID); err != nil {
		return result.Fail[domain.Post](err)
	}

	var oldSlug string
	var updated *domain.Post
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.PostByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound(Posts)
		}
		oldSlug = existing.Slug

		next := s.preparePost(in, existing)
		next.ID = id
		updated, err = tx.UpdatePost(ctx, next)
		if err == nil && updated == nil {
			return notFound(Posts)
		}

		return err
	})

	return finishUpdate(ctx, s, Posts, updated, err, in.Slug, oldSlug)
}

func (s *Service) DeletePost(ctx context.Context, id int64) result.Result[Deleted] {
	return remove(ctx, s, Posts, id, func() (*domain.Post, error) {
		return s.storage.DeletePost(ctx, id)
	}, func(p *domain.Post) string { return p.Slug })
}
