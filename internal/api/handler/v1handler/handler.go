// Package v1handler serves the public site API under /api and the admin API
// under /admin. Handlers only translate HTTP to content operations and write
// their result envelope; every decision lives in the operations.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"travel/internal/auth"
	"travel/internal/content"
	"travel/pkg/logger"
	"travel/pkg/objectstore"
	"travel/pkg/pagecache"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Deps struct {
	Content *content.Service
	Auth    *auth.Service
	Cache   *pagecache.Cache
	Objects objectstore.Store
}

type Options struct {
	// SecureCookie issues the __Secure- prefixed session cookie.
	SecureCookie bool
	// MaxUploadBytes limits uploaded files.
	MaxUploadBytes int64
}

type Handler struct {
	content *content.Service
	auth    *auth.Service
	cache   *pagecache.Cache
	objects objectstore.Store
	opts    Options
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{
		content: deps.Content,
		auth:    deps.Auth,
		cache:   deps.Cache,
		objects: deps.Objects,
		opts:    opts,
	}
}

// Register mounts every route on e.
func (h *Handler) Register(e *echo.Echo) {
	h.registerPublic(e.Group("/api"))

	admin := e.Group("/admin")
	h.registerAuth(admin)
	h.registerAdmin(admin.Group("", h.RequireSession))
}

// StatusOf maps a semantic error kind to its HTTP status.
func StatusOf(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// send writes the envelope of res with status on success or the status of its
// error kind on failure.
func send[T any](c echo.Context, status int, res result.Result[T]) error {
	if !res.Success() {
		status = StatusOf(res.Err())
	}

	return c.JSON(status, res.Envelope())
}

// fail writes a failure envelope for an error raised before any operation ran.
func fail(c echo.Context, err error) error {
	return c.JSON(StatusOf(err), result.FailEnvelope(err))
}

// sendList writes a public listing. A failed listing has already been logged
// by the operation and is rendered as an empty, uncached list.
func sendList[T any](c echo.Context, res result.Result[[]T]) error {
	if !res.Success() {
		c.Response().Header().Set("Cache-Control", "no-store")

		return c.JSON(http.StatusOK, result.OK([]T{}, "").Envelope())
	}

	return send(c, http.StatusOK, res)
}

func bind[T any](c echo.Context) (T, error) {
	var in T
	if err := (&echo.DefaultBinder{}).BindBody(c, &in); err != nil {
		return in, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return in, nil
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid id")
	}

	return id, nil
}

// ErrorHandler renders errors escaping the handlers (unknown routes, body
// limits, panics recovered by echo) as failure envelopes.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := serrors.ErrInternal
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			kind = serrors.ErrNotFound
		case http.StatusRequestEntityTooLarge, http.StatusBadRequest, http.StatusUnsupportedMediaType:
			kind = serrors.ErrBadRequest
		case http.StatusUnauthorized:
			kind = serrors.ErrUnauthorized
		}
		_ = c.JSON(he.Code, result.FailEnvelope(serrors.Wrap(kind, err, "%s", http.StatusText(he.Code))))

		return
	}

	logger.Error(c.Request().Context(), "unhandled error", zap.Error(err))
	_ = fail(c, serrors.Wrap(serrors.ErrInternal, err, "internal error"))
}

func reqCtx(c echo.Context) context.Context {
	return c.Request().Context()
}
