package v1handler

import (
	"net/http"
	"travel/internal/auth"
	"travel/pkg/controller"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"github.com/labstack/echo/v4"
)

// AuthForm describes the state of the login and signup pages.
type AuthForm struct {
	CanSignUp bool `json:"canSignUp"`
}

func (h *Handler) registerAuth(g *echo.Group) {
	g.GET("/login", h.authForm)
	g.POST("/login", h.login)
	g.GET("/signup", h.authForm)
	g.POST("/signup", h.signup)
	g.POST("/logout", h.logout)
}

func (h *Handler) authForm(c echo.Context) error {
	ok, err := h.auth.CanSignUp(reqCtx(c))
	if err != nil {
		return fail(c, serrors.Wrap(serrors.ErrInternal, err, "failed to load the form"))
	}

	return send(c, http.StatusOK, result.OK(AuthForm{CanSignUp: ok}, ""))
}

func client(c echo.Context) auth.Client {
	return auth.Client{
		UserAgent: c.Request().UserAgent(),
		IP:        controller.GetClientIP(c.Request()),
	}
}

func (h *Handler) login(c echo.Context) error {
	in, err := bind[auth.SignInInput](c)
	if err != nil {
		return fail(c, err)
	}

	res := h.auth.SignIn(reqCtx(c), in, client(c))
	if res.Success() {
		h.setSessionCookie(c, res.Data().Token, res.Data().ExpiresAt)
	}

	return send(c, http.StatusOK, res)
}

func (h *Handler) signup(c echo.Context) error {
	in, err := bind[auth.SignUpInput](c)
	if err != nil {
		return fail(c, err)
	}

	res := h.auth.SignUp(reqCtx(c), in, client(c))
	if res.Success() {
		h.setSessionCookie(c, res.Data().Token, res.Data().ExpiresAt)
	}

	return send(c, http.StatusCreated, res)
}

func (h *Handler) logout(c echo.Context) error {
	res := h.auth.SignOut(reqCtx(c), sessionToken(c.Request()))
	h.clearSessionCookie(c)

	return send(c, http.StatusOK, res)
}
