package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"travel/pkg/domain"
	"travel/pkg/storage"
	"travel/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countDestinations(t *testing.T, db *sql.DB, slug string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM destinations WHERE slug = $1`, slug)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreDestination(ctx, domain.Destination{Name: "Bali", Slug: "bali", Active: true})
	require.NoError(t, err)
	require.Equal(t, 0, countDestinations(t, db, "bali"), "uncommitted rows must not be visible")
	require.NoError(t, tx.Commit())
	require.Equal(t, 1, countDestinations(t, db, "bali"))

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreDestination(ctx, domain.Destination{Name: "Lombok", Slug: "lombok"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.Equal(t, 0, countDestinations(t, db, "lombok"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreDestination(ctx, domain.Destination{Name: "Kyoto", Slug: "kyoto"})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countDestinations(t, db, "kyoto"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreDestination(ctx, domain.Destination{Name: "Osaka", Slug: "osaka"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countDestinations(t, db, "osaka"))
}

func TestPgSQL_WithTx_RollsBackOnPanic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(tx storage.AllStorage) error {
			_, err := tx.StoreDestination(ctx, domain.Destination{Name: "Oslo", Slug: "oslo", Active: true})
			require.NoError(t, err)
			panic("boom")
		})
	})

	require.Equal(t, 0, countDestinations(t, pg.DB.(*sql.DB), "oslo"))
}

func TestOptions_DSN(t *testing.T) {
	dsn := postgres.Options{
		Username: "travel",
		Password: "p@ss word",
		Host:     "db",
		Port:     5432,
		Database: "travel",
		SslMode:  "disable",
	}.DSN()

	require.Equal(t, "postgres://travel:p%40ss%20word@db:5432/travel?sslmode=disable", dsn)
}
