// Package content is the access layer between the HTTP handlers and the
// store. Every operation returns a result.Result: validation, uniqueness and
// store failures are turned into semantic errors here and never escape as raw
// errors. Successful mutations enqueue a revalidation job for the cache
// topics they affect.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"
	"travel/pkg/logger"
	"travel/pkg/metrics"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	"travel/pkg/validation"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// TopicDashboard is invalidated whenever a dashboard count may change.
const TopicDashboard = "admin:dashboard"

// Entity names a content kind in messages and cache topics.
type Entity struct {
	name    string
	key     string
	plural  string
	counted bool
}

// ListTopic tags the public listing of the entity.
func (e Entity) ListTopic() string { return e.plural }

// DetailTopic tags the public page of a single entity.
func (e Entity) DetailTopic(slug string) string { return e.key + ":" + slug }

// AdminTopic tags the admin listing of the entity.
func (e Entity) AdminTopic() string { return "admin:" + e.plural }

// topics lists every topic a mutation of the entity touches.
func (e Entity) topics(slugs ...string) []string {
	topics := []string{e.ListTopic(), e.AdminTopic()}
	for i, slug := range slugs {
		if slug == "" || (i > 0 && slug == slugs[0]) {
			continue
		}
		topics = append(topics, e.DetailTopic(slug))
	}
	if e.counted {
		topics = append(topics, TopicDashboard)
	}

	return topics
}

//nolint: gochecknoglobals
var (
	Destinations   = Entity{name: "destination", key: "destination", plural: "destinations"}
	Packages       = Entity{name: "package", key: "package", plural: "packages", counted: true}
	Categories     = Entity{name: "category", key: "category", plural: "categories"}
	Posts          = Entity{name: "post", key: "post", plural: "posts", counted: true}
	PlannerOptions = Entity{name: "planner option", key: "planner-option", plural: "planner-options"}
	Inquiries      = Entity{name: "inquiry", key: "inquiry", plural: "inquiries", counted: true}
	Bookings       = Entity{name: "booking", key: "booking", plural: "bookings", counted: true}
	Contacts       = Entity{name: "contact submission", key: "contact", plural: "contacts", counted: true}
	SiteSettings   = Entity{name: "settings", key: "settings", plural: "settings"}
)

// Service implements the content operations on top of a storage.Storage.
type Service struct {
	storage   storage.Storage
	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
	now       func() time.Time
}

// Option customizes a Service.
type Option func(s *Service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(storage storage.Storage, opts ...Option) *Service {
	s := &Service{
		storage:   storage,
		sanitizer: bluemonday.UGCPolicy(),
		stripper:  bluemonday.StrictPolicy(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// validate normalizes and validates an input, returning a BAD_REQUEST error
// whose message is the first field error.
func (s *Service) validate(in any) error {
	if n, ok := in.(normalizer); ok {
		n.normalize()
	}

	err := validation.Validate(in)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return serrors.Wrap(serrors.ErrBadRequest, verrs, "%s", verrs.Error())
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid input")
}

// writeFailed classifies a failed create or update. Slug collisions are
// reported to the caller; anything else is logged and hidden behind a
// generic message.
func (s *Service) writeFailed(ctx context.Context, e Entity, action string, err error) error {
	if storage.IsUniqueViolation(err, "slug") {
		return serrors.Wrap(serrors.ErrConflict, err, "slug must be unique")
	}

	logger.Error(ctx, fmt.Sprintf("could not %s %s", action, e.name), zap.Error(err))

	return serrors.Wrap(serrors.ErrInternal, err, "failed to %s %s", action, e.name)
}

// mutated records the outcome of a write and, on success, invalidates the
// affected topics.
func (s *Service) mutated(ctx context.Context, e Entity, action string, err error, slugs ...string) {
	metrics.ContentMutations.WithLabelValues(e.key, action, metrics.Outcome(err)).Inc()
	if err != nil {
		return
	}

	s.invalidate(ctx, e.topics(slugs...)...)
}

// invalidate enqueues a revalidation job. It never fails the caller: the
// mutation already happened and a stale page expires on its own.
func (s *Service) invalidate(ctx context.Context, topics ...string) {
	if len(topics) == 0 {
		return
	}
	if _, err := s.storage.AddJob(ctx, RevalidateArgs{Topics: topics}, nil); err != nil {
		logger.Warn(ctx, "could not enqueue revalidation", zap.Strings("topics", topics), zap.Error(err))
	}
}

func notFound(e Entity) error {
	return serrors.With(serrors.ErrNotFound, "%s not found", e.name)
}

// fetchList runs a listing. A nil slice is returned as an empty one so the
// JSON form is always an array.
func fetchList[T any](ctx context.Context, e Entity, fetch func() ([]T, error)) result.Result[[]T] {
	items, err := fetch()
	if err != nil {
		logger.Error(ctx, "could not list "+e.plural, zap.Error(err))

		return result.Fail[[]T](serrors.Wrap(serrors.ErrInternal, err, "failed to fetch %s", e.plural))
	}
	if items == nil {
		items = []T{}
	}

	return result.OK(items, "")
}

// fetchOne runs a single lookup; a nil row is NOT_FOUND.
func fetchOne[T any](ctx context.Context, e Entity, fetch func() (*T, error)) result.Result[T] {
	item, err := fetch()
	if err != nil {
		logger.Error(ctx, "could not fetch "+e.name, zap.Error(err))

		return result.Fail[T](serrors.Wrap(serrors.ErrInternal, err, "failed to fetch %s", e.name))
	}
	if item == nil {
		return result.Fail[T](notFound(e))
	}

	return result.OK(*item, "")
}

// Deleted is the payload of delete operations.
type Deleted struct {
	ID int64 `json:"id"`
}

// remove deletes by id. Deleting a missing row still succeeds.
func remove[T any](ctx context.Context,
	s *Service,
	e Entity,
	id int64,
	del func() (*T, error),
	slugOf func(*T) string) result.Result[Deleted] {
	row, err := del()
	if err != nil {
		logger.Error(ctx, "could not delete "+e.name, zap.Int64("id", id), zap.Error(err))
		s.mutated(ctx, e, "delete", err)

		return result.Fail[Deleted](serrors.Wrap(serrors.ErrInternal, err, "failed to delete %s", e.name))
	}

	var slug string
	if row != nil && slugOf != nil {
		slug = slugOf(row)
	}
	s.mutated(ctx, e, "delete", nil, slug)

	return result.OK(Deleted{ID: id}, e.name+" deleted")
}
