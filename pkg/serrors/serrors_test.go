package serrors_test

import (
	"errors"
	"fmt"
	"marketplace/pkg/serrors"
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
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
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

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "message", err: serrors.With(serrors.ErrNotFound, "product %d not found", 42), want: "product 42 not found"},
		{name: "message and cause", err: serrors.Wrap(serrors.ErrNotFound, base, "getting product"), want: "getting product: db down"},
		{name: "cause only", err: serrors.Wrap(serrors.ErrInternal, base, ""), want: "db down"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrNotFound), want: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
	require.True(t, serrors.Is(fmt.Errorf("outer: %w", e), serrors.ErrNotFound))
	require.False(t, serrors.Is(e, nil))
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
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "bad")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(fmt.Errorf("wrapped: %w", serrors.ErrConflict)))
	require.Equal(t, serrors.ErrTimeout,
		serrors.KindOf(fmt.Errorf("a: %w", serrors.Wrap(serrors.ErrTimeout, errors.New("slow"), "b"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}
