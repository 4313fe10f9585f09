package serrors_test

import (
	"errors"
	"fmt"
	"orgdash/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrValidation,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("gateway down")

	e1 := serrors.With(serrors.ErrNotFound, "organization %d not found", 42)
	require.Equal(t, "organization 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting organization")
	require.Equal(t, "getting organization: gateway down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "listing agencies")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrUnavailable, k)

	var c customError
	require.ErrorAs(t, e, &c)
	require.Equal(t, base.msg, c.msg)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{
			name: "direct semantic error",
			err:  serrors.With(serrors.ErrValidation, "short name is required"),
			want: serrors.ErrValidation,
		},
		{
			name: "wrapped with fmt.Errorf",
			err:  fmt.Errorf("saving: %w", serrors.KindOnly(serrors.ErrConflict)),
			want: serrors.ErrConflict,
		},
		{
			name: "bare kind sentinel",
			err:  serrors.ErrNotFound,
			want: serrors.ErrNotFound,
		},
		{
			name: "plain error has no kind",
			err:  errors.New("boom"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestAccessors(t *testing.T) {
	base := errors.New("cause")
	e := serrors.Wrap(serrors.ErrInternal, base, "doing work")

	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "doing work", e.Message())
	require.Equal(t, base, e.Cause())
	require.Equal(t, base, errors.Unwrap(e))
}
