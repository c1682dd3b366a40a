package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"travel/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["https://wanderlust.example"]
auth:
  allowSignup: true
storage:
  bucket: media
  cdnBaseUrl: https://cdn.example
`), 0o600))
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://wanderlust.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.True(t, cfg.Auth.AllowSignup)
	require.Equal(t, 168*time.Hour, cfg.Auth.SessionTTL)
	require.Equal(t, "media", cfg.Storage.Bucket)
	require.EqualValues(t, 5242880, cfg.Storage.MaxUploadBytes)
	require.Equal(t, 30*time.Second, cfg.Cache.TTL)
	require.Equal(t, "travel", cfg.Database.DatabaseName)
	require.Equal(t, time.Hour, cfg.Worker.SessionPurgeInterval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
