package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/packages", nil)
	req.Header.Set("Origin", "https://wanderlust.example")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"https://wanderlust.example"})(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "https://wanderlust.example", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORS_NormalRequest(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "listed origin", allowed: []string{"https://a.example"}, origin: "https://a.example", want: "https://a.example"},
		{name: "wildcard reflects origin", allowed: []string{"*"}, origin: "https://b.example", want: "https://b.example"},
		{name: "foreign origin", allowed: []string{"https://a.example"}, origin: "https://evil.example", want: ""},
		{name: "same origin request", allowed: []string{"*"}, origin: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			controller.WithCORS(tt.allowed)(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusTeapot, rec.Code)
			require.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
