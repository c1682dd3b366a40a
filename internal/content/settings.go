package content

import (
	"context"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"

	"go.uber.org/zap"
)

// GetSettings returns the site settings, creating the defaults on first use.
// Concurrent first calls all observe the same row.
func (s *Service) GetSettings(ctx context.Context) result.Result[domain.Settings] {
	settings, err := loadSettings(ctx, s.storage)
	if err != nil {
		logger.Error(ctx, "could not load settings", zap.Error(err))

		return result.Fail[domain.Settings](serrors.Wrap(serrors.ErrInternal, err, "failed to fetch settings"))
	}

	return result.OK(*settings, "")
}

func (s *Service) UpdateSettings(ctx context.Context, in SettingsInput) result.Result[domain.Settings] {
	if err := s.validate(&in); err != nil {
		return result.Fail[domain.Settings](err)
	}

	var updated *domain.Settings
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := loadSettings(ctx, tx)
		if err != nil {
			return err
		}

		updated, err = tx.UpdateSettings(ctx, in.apply(*current))
		if err == nil && updated == nil {
			return notFound(SiteSettings)
		}

		return err
	})

	return finishUpdate(ctx, s, SiteSettings, updated, err)
}

func loadSettings(ctx context.Context, st storage.SettingsStorage) (*domain.Settings, error) {
	settings, err := st.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	return st.EnsureSettings(ctx, domain.DefaultSettings())
}
