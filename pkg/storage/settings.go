package storage

import (
	"context"
	"travel/pkg/domain"
)

// SettingsStorage persists the singleton site settings row.
type SettingsStorage interface {
	// Settings returns the most recently created settings row, or nil when
	// none exists.
	Settings(ctx context.Context) (*domain.Settings, error)
	// EnsureSettings inserts defaults unless a settings row already exists and
	// returns the live row. Concurrent callers all observe the same row.
	EnsureSettings(ctx context.Context, defaults domain.Settings) (*domain.Settings, error)
	// UpdateSettings overwrites the row with settings.ID. Returns nil when the
	// row does not exist.
	UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
}
