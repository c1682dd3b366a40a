package result_test

import (
	"encoding/json"
	"errors"
	"testing"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/validation"

	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	r := result.OK([]int{1, 2}, "done")
	require.True(t, r.Success())
	require.NoError(t, r.Err())
	require.Nil(t, r.Kind())
	require.Equal(t, []int{1, 2}, r.Data())
	require.Equal(t, []int{1, 2}, r.OrEmpty())

	env := r.Envelope()
	require.True(t, env.Success)
	require.Empty(t, env.Error)
	require.Equal(t, "done", env.Message)
}

func TestFail_NilErrorStillFails(t *testing.T) {
	r := result.Fail[int](nil)
	require.False(t, r.Success())
	require.Equal(t, serrors.ErrInternal, r.Kind())

	env := r.Envelope()
	require.False(t, env.Success)
	require.NotEmpty(t, env.Error)
}

func TestFail_EnvelopeHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	r := result.Fail[[]string](serrors.Wrap(serrors.ErrInternal, cause, "failed to fetch posts"))

	require.Nil(t, r.OrEmpty())
	env := r.Envelope()
	require.False(t, env.Success)
	require.Equal(t, "failed to fetch posts", env.Error)
	require.Equal(t, "INTERNAL", env.Code)
	require.Nil(t, env.Data)
}

func TestFail_NotFound(t *testing.T) {
	r := result.Fail[string](serrors.With(serrors.ErrNotFound, "destination not found"))
	require.True(t, r.NotFound())
	require.Equal(t, "NOT_FOUND", r.Envelope().Code)

	require.False(t, result.Fail[string](errors.New("x")).NotFound())
}

func TestFail_ValidationFields(t *testing.T) {
	verrs := validation.Errors{
		{Field: "name", Rule: "required", Message: "Name is required"},
		{Field: "email", Rule: "email", Message: "Email must be a valid email address"},
	}
	r := result.Fail[int](serrors.Wrap(serrors.ErrBadRequest, verrs, "%s", verrs.Error()))

	env := r.Envelope()
	require.Equal(t, "Name is required", env.Error)
	require.Equal(t, "BAD_REQUEST", env.Code)
	require.Len(t, env.Fields, 2)
}

func TestEnvelope_JSONHasExactlyOneVariant(t *testing.T) {
	okJSON, err := json.Marshal(result.OK(map[string]int{"a": 1}, "").Envelope())
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"data":{"a":1}}`, string(okJSON))

	failJSON, err := json.Marshal(result.FailEnvelope(serrors.With(serrors.ErrConflict, "slug must be unique")))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":false,"error":"slug must be unique","code":"CONFLICT"}`, string(failJSON))
}
