package controller

import (
	"net/http"
	"strings"
)

// Default cookie names of the admin session. The secure variant is set when
// the site is served over HTTPS.
const (
	SessionCookieName       = "travel.session_token"
	SecureSessionCookieName = "__Secure-travel.session_token"
)

// GateOptions configures WithAccessGate.
type GateOptions struct {
	// Prefix is the protected area, e.g. "/admin".
	Prefix string
	// PublicPaths are sub-paths of Prefix reachable without a session.
	PublicPaths []string
	// LoginPath is where visitors without a session are sent.
	LoginPath string
	// HomePath is where signed-in visitors of a public sub-path are sent.
	HomePath string
	// CookieNames are checked in order; any non-empty one counts as a session.
	CookieNames []string
}

// DefaultGateOptions protects /admin and leaves its login and signup pages open.
func DefaultGateOptions() GateOptions {
	return GateOptions{
		Prefix:      "/admin",
		PublicPaths: []string{"/admin/login", "/admin/signup"},
		LoginPath:   "/admin/login",
		HomePath:    "/admin/dashboard",
		CookieNames: []string{SessionCookieName, SecureSessionCookieName},
	}
}

// GateDecision returns where a request for path must be redirected, or ""
// when it passes through. It is a pure function of the path and session
// presence.
func GateDecision(path string, hasSession bool, opts GateOptions) string {
	if !underPath(path, opts.Prefix) {
		return ""
	}

	public := false
	for _, p := range opts.PublicPaths {
		if underPath(path, p) {
			public = true

			break
		}
	}

	switch {
	case !public && !hasSession:
		return opts.LoginPath
	case public && hasSession:
		return opts.HomePath
	default:
		return ""
	}
}

// HasSession reports whether r carries a non-empty session cookie under any
// of the names. Only presence is checked; token verification happens in the
// admin handlers.
func HasSession(r *http.Request, names []string) bool {
	for _, name := range names {
		c, err := r.Cookie(name)
		if err != nil {
			continue
		}
		if c.Value != "" {
			return true
		}
	}

	return false
}

// WithAccessGate redirects (302) anonymous visitors of the protected area to
// the login page and signed-in visitors of the public sub-paths to the admin
// home. Everything else passes through untouched.
func WithAccessGate(next http.Handler, opts GateOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target := GateDecision(r.URL.Path, HasSession(r, opts.CookieNames), opts); target != "" {
			http.Redirect(w, r, target, http.StatusFound)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// underPath reports whether path equals base or lies below it. "/adminx" is
// not under "/admin".
func underPath(path, base string) bool {
	if base == "" {
		return false
	}
	if path == base {
		return true
	}

	return strings.HasPrefix(path, strings.TrimSuffix(base, "/")+"/")
}
