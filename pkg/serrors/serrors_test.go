package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"domainsync/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type apiError struct{ code string }

func (e *apiError) Error() string { return e.code }

func TestKinds_AreDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for _, k := range kinds {
		require.False(t, seen[k], "duplicate kind %v", k)
		seen[k] = true
	}
}

func TestError_Formatting(t *testing.T) {
	cases := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"message", serrors.With(serrors.ErrNotFound, "domain %q not found", "a.com"), `domain "a.com" not found`},
		{"message and cause", serrors.Wrap(serrors.ErrConflict, errors.New("version 3"), "stale"), "stale: version 3"},
		{"cause only", serrors.Wrap(serrors.ErrConflict, errors.New("version 3"), ""), "version 3"},
		{"kind only", serrors.KindOnly(serrors.ErrRateLimited), "RATE_LIMITED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	cause := &apiError{code: "ThrottlingException"}
	err := fmt.Errorf("could not list domains: %w",
		serrors.Wrap(serrors.ErrRateLimited, cause, "registrar throttled"))

	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrRateLimited, k)

	var aErr *apiError
	require.ErrorAs(t, err, &aErr)
	require.Equal(t, "ThrottlingException", aErr.code)
}

func TestError_Accessors(t *testing.T) {
	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("expired"), "invalid token")
	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "invalid token", err.Message())
	require.EqualError(t, errors.Unwrap(err), "expired")
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "empty name")))
	require.Equal(t, serrors.ErrNotFound,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrNotFound))))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.ErrConflict))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(nil))
}

func TestTemporary(t *testing.T) {
	require.True(t, serrors.Temporary(serrors.KindOnly(serrors.ErrRateLimited)))
	require.True(t, serrors.Temporary(serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "")))
	require.True(t, serrors.Temporary(serrors.KindOnly(serrors.ErrUnavailable)))
	require.False(t, serrors.Temporary(serrors.KindOnly(serrors.ErrBadRequest)))
	require.False(t, serrors.Temporary(errors.New("plain")))
}
