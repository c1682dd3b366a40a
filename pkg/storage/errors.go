package storage

import (
	"errors"
	"fmt"
)

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// UniqueViolationError is returned when a write collides with a unique
// constraint. Field names the column the constraint guards (e.g. "slug") so
// callers can target their error message.
type UniqueViolationError struct {
	// Table is the table the write targeted.
	Table string
	// Field is the column protected by the violated constraint.
	Field string
	// Constraint is the name of the violated constraint.
	Constraint string
	// Err is the driver error.
	Err error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s.%s (%s): %v", e.Table, e.Field, e.Constraint, e.Err)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }

// IsUniqueViolation reports whether err is a unique violation on the given
// field. An empty field matches any unique violation.
func IsUniqueViolation(err error, field string) bool {
	var uv *UniqueViolationError
	if !errors.As(err, &uv) {
		return false
	}

	return field == "" || uv.Field == field
}
