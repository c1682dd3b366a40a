package main

import (
	"context"
	"database/sql"
	"fmt"
	root "travel"
	"travel/internal/config"
	"travel/pkg/domain"
	"travel/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations of the content tables.
func migrateSchema(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate content tables: %w", err)
	}

	return nil
}

// migrateQueue brings the river job tables to their latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	applied, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(applied) > 0 && applied[len(applied)-1].Version >= latest {
		return nil
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
	if err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	logger.Info(ctx, "river queue migrated", zap.Int("versions", len(res.Versions)))

	return nil
}

// migrateCommand constructs the 'migrate' subcommand. It applies the content
// and job queue migrations and seeds the settings row.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if err := migrateSchema(db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}

			if seed, _ := cmd.Flags().GetBool("seed-settings"); seed {
				if _, err := strg.EnsureSettings(ctx, domain.DefaultSettings()); err != nil {
					logger.Fatal(ctx, "could not seed site settings", zap.Error(err))
				}
			}

			logger.Info(ctx, "database is up to date")
		},
	}

	cmd.Flags().Bool("seed-settings", true, "Insert default site settings when none exist")

	return cmd
}
