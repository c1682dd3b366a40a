package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const settingsTable = "site_settings"

// Settings returns the live settings row, or nil when none was created yet.
func (p *PgSQL) Settings(ctx context.Context) (*domain.Settings, error) {
	var row PgSettings
	found, err := p.Builder.From(settingsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch settings from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// EnsureSettings inserts defaults unless a row exists. The unique
// singleton_key column turns concurrent first inserts into no-ops, so every
// caller reads back the same row.
func (p *PgSQL) EnsureSettings(ctx context.Context, defaults domain.Settings) (*domain.Settings, error) {
	var in PgSettings
	in.FromDomain(defaults)
	if _, err := p.Builder.Insert(settingsTable).
		Rows(in).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not ensure settings in pg: %w", err)
	}

	settings, err := p.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("settings row missing after insert")
	}

	return settings, nil
}

func (p *PgSQL) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	var in, out PgSettings
	in.FromDomain(settings)
	in.UpdatedAt = time.Now().UTC()
	found, err := p.Builder.Update(settingsTable).
		Set(in).
		Where(goqu.I("id").Eq(settings.ID)).
		Returning(&PgSettings{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, writeError(err, settingsTable, "update")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain(), nil
}
