package serrors_test

import (
	"errors"
	"fmt"
	"furl/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotAURL,
		serrors.ErrInvalidDomain,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrNotAURL, serrors.ErrInvalidDomain)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("missing host")

	e1 := serrors.With(serrors.ErrNotAURL, "token %q is not a URL", "::")
	require.Equal(t, `token "::" is not a URL`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrNotAURL, base, "parsing token")
	require.Equal(t, "parsing token: missing host", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInvalidDomain)
	require.Equal(t, "INVALID_DOMAIN", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotAURL, base, "parsing")

	require.ErrorIs(t, e, serrors.ErrNotAURL)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInvalidDomain)

	wrapped := fmt.Errorf("record 3: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrNotAURL)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "decoding body")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrBadRequest, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	k, ok := serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(serrors.ErrInvalidDomain, "host %q", "x.invalid")))
	require.True(t, ok)
	require.Equal(t, serrors.ErrInvalidDomain, k)

	k, ok = serrors.KindOf(serrors.ErrNotAURL)
	require.True(t, ok)
	require.Equal(t, serrors.ErrNotAURL, k)

	_, ok = serrors.KindOf(errors.New("plain"))
	require.False(t, ok)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInternal, base, "rendering")
	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "rendering", e.Message())
	require.Equal(t, base, e.Cause())
}
