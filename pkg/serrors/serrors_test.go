package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"travel/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "destination %d not found", 42)
	require.Equal(t, "destination 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "failed to create destination")
	require.Equal(t, "failed to create destination: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.With(serrors.ErrConflict, "slug must be unique")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "name is required"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
}

func TestPublicMessage_NeverLeaksCause(t *testing.T) {
	cause := errors.New(`pq: relation "destinations" does not exist`)
	err := serrors.Wrap(serrors.ErrInternal, cause, "failed to fetch destinations")

	require.Equal(t, "failed to fetch destinations", serrors.PublicMessage(err))
	require.Equal(t, "internal error", serrors.PublicMessage(cause))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.KindOnly(serrors.ErrNotFound)))
}
