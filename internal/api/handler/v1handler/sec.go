package v1handler

import (
	"context"
	"net/http"
	"strings"
	"time"
	"travel/pkg/controller"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/serrors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type userKey struct{}

// UserFrom returns the admin authenticated for ctx.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)

	return u, ok && u != nil
}

// sessionToken reads the session cookie, falling back to a bearer token.
func sessionToken(r *http.Request) string {
	for _, name := range []string{controller.SecureSessionCookieName, controller.SessionCookieName} {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value
		}
	}

	token, ok := strings.CutPrefix(r.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}

// RequireSession verifies the session token of admin requests. Requests with
// a missing, expired or revoked token are rejected and their cookie cleared.
func (h *Handler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c.Request())
		if token == "" {
			return fail(c, serrors.With(serrors.ErrUnauthorized, "sign in required"))
		}

		ctx := reqCtx(c)
		user, err := h.auth.Verify(ctx, token)
		if err != nil {
			logger.Debug(ctx, "session rejected", zap.Error(err))
			h.clearSessionCookie(c)

			return fail(c, err)
		}

		ctx = context.WithValue(ctx, userKey{}, user)
		ctx = logger.WithFields(ctx, zap.Int64("adminID", int64(user.ID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (h *Handler) cookieName() string {
	if h.opts.SecureCookie {
		return controller.SecureSessionCookieName
	}

	return controller.SessionCookieName
}

func (h *Handler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie under both names; the gate
// accepts either.
func (h *Handler) clearSessionCookie(c echo.Context) {
	for _, name := range []string{controller.SessionCookieName, controller.SecureSessionCookieName} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.opts.SecureCookie || name == controller.SecureSessionCookieName,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
