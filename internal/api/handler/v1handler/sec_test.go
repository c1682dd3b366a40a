package v1handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/internal/api/handler/v1handler"
	"travel/pkg/controller"
	"travel/pkg/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRequireSession_PutsAdminInContext(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	var seen *domain.User
	handler := s.h.RequireSession(func(c echo.Context) error {
		seen, _ = v1handler.UserFrom(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	c := s.e.NewContext(withSession(httptest.NewRequest(http.MethodGet, "/admin/x", nil), token), rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, "admin@example.com", seen.Email)
}

func TestRequireSession_NoTokenSkipsHandler(t *testing.T) {
	s := newTestServer(t)

	called := false
	handler := s.h.RequireSession(func(c echo.Context) error {
		called = true

		return nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/x", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic Zm9vOmJhcg==")
	require.NoError(t, handler(s.e.NewContext(req, rec)))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserFrom_Empty(t *testing.T) {
	_, ok := v1handler.UserFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}

func TestSecureCookie(t *testing.T) {
	s := newTestServerWith(t, v1handler.Options{SecureCookie: true})

	// the secure cookie name is read as well
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: controller.SecureSessionCookieName, Value: "garbage"})
	rec, _ := s.do(t, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	requireCookiesCleared(t, rec)
	for _, c := range rec.Result().Cookies() {
		require.True(t, c.Secure, c.Name)
	}
}

func TestRequireSession_ClearsBothCookieNames(t *testing.T) {
	s := newTestServer(t)

	// a secure cookie left over from a previous configuration
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: controller.SecureSessionCookieName, Value: "stale"})
	rec, _ := s.do(t, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	requireCookiesCleared(t, rec)
}
