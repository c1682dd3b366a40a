package postgres

import (
	"errors"
	"fmt"
	"strings"
	"travel/pkg/storage"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// writeError translates driver errors of insert and update statements.
// Unique violations become *storage.UniqueViolationError so callers can
// report the offending field. Constraints follow PostgreSQL's default
// "<table>_<column>_key" naming.
func writeError(err error, table, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		field := strings.TrimSuffix(strings.TrimPrefix(pgErr.ConstraintName, table+"_"), "_key")

		return &storage.UniqueViolationError{
			Table:      table,
			Field:      field,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	return fmt.Errorf("could not %s %s in pg: %w", action, table, err)
}
