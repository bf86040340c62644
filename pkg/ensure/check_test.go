package ensure_test

import (
	"errors"
	"regexp/syntax"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ensured/pkg/ensure"
)

type username string

func ptr(s string) *string {
	return &s
}

func TestIsNull(t *testing.T) {
	t.Run("untyped nil is null", func(t *testing.T) {
		assert.True(t, ensure.IsNull(nil))
	})

	t.Run("typed nil values are null", func(t *testing.T) {
		var p *int
		var s []int
		var m map[string]int
		var fn func()
		var ch chan int
		assert.True(t, ensure.IsNull(p))
		assert.True(t, ensure.IsNull(s))
		assert.True(t, ensure.IsNull(m))
		assert.True(t, ensure.IsNull(fn))
		assert.True(t, ensure.IsNull(ch))
	})

	t.Run("zero values of non-nillable types are not null", func(t *testing.T) {
		assert.False(t, ensure.IsNull(0))
		assert.False(t, ensure.IsNull(""))
		assert.False(t, ensure.IsNull(struct{}{}))
		assert.False(t, ensure.IsNull(time.Time{}))
	})

	t.Run("non-nil pointer is not null", func(t *testing.T) {
		assert.False(t, ensure.IsNull(ptr("")))
	})
}

func TestIsNullOrEmpty(t *testing.T) {
	assert.True(t, ensure.IsNullOrEmpty((*string)(nil)))
	assert.True(t, ensure.IsNullOrEmpty(""))
	assert.True(t, ensure.IsNullOrEmpty(ptr("")))
	assert.True(t, ensure.IsNullOrEmpty(username("")))
	assert.False(t, ensure.IsNullOrEmpty(" "))
	assert.False(t, ensure.IsNullOrEmpty(ptr("a")))
	assert.False(t, ensure.IsNullOrEmpty(username("bob")))
}

func TestIsNullOrWhitespace(t *testing.T) {
	t.Run("null and empty", func(t *testing.T) {
		assert.True(t, ensure.IsNullOrWhitespace((*string)(nil)))
		assert.True(t, ensure.IsNullOrWhitespace(""))
	})

	t.Run("unicode white space only", func(t *testing.T) {
		assert.True(t, ensure.IsNullOrWhitespace(" \t\r\n"))
		assert.True(t, ensure.IsNullOrWhitespace("  "))
		assert.True(t, ensure.IsNullOrWhitespace(ptr("   ")))
	})

	t.Run("content with surrounding space", func(t *testing.T) {
		assert.False(t, ensure.IsNullOrWhitespace("  John  "))
	})
}

func TestHasCorrectLength(t *testing.T) {
	t.Run("null has length zero", func(t *testing.T) {
		ok, err := ensure.HasCorrectLength((*string)(nil), 0, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = ensure.HasCorrectLength((*string)(nil), 1, 5)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		cases := []struct {
			value    string
			min, max int
			want     bool
		}{
			{"hello", 1, 4, false},
			{"hello", 5, 5, true},
			{"hello", 1, 5, true},
			{"hello", 6, 10, false},
			{"", 0, 0, true},
			{"abc", 3, 2, false},
		}
		for _, tc := range cases {
			ok, err := ensure.HasCorrectLength(tc.value, tc.min, tc.max)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok, "%q in [%d,%d]", tc.value, tc.min, tc.max)
		}
	})

	t.Run("negative minimum is rejected regardless of value", func(t *testing.T) {
		for _, v := range []*string{nil, ptr(""), ptr("x")} {
			ok, err := ensure.HasCorrectLength(v, -1, 5)
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ensure.ErrInvalidArgument)

			e, found := ensure.AsError(err)
			require.True(t, found)
			assert.Equal(t, "min", e.Param)
			assert.Equal(t, -1, e.Value)
		}
	})

	t.Run("counts code points after normalization", func(t *testing.T) {
		assert.Equal(t, 1, ensure.Length("\u00e9"))
		assert.Equal(t, 1, ensure.Length("e\u0301"))
		assert.Equal(t, 5, ensure.Length("h\u00e9llo"))
		assert.Equal(t, 3, ensure.Length(username("bob")))
		assert.Equal(t, 0, ensure.Length((*string)(nil)))
	})
}

func TestMatchesPattern(t *testing.T) {
	t.Run("matching and non-matching values", func(t *testing.T) {
		ok, err := ensure.MatchesPattern("abc123", `^[a-z]+\d+$`)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = ensure.MatchesPattern("ABC", `^[a-z]+$`)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pattern is unanchored", func(t *testing.T) {
		ok, err := ensure.MatchesPattern("order-42-x", `\d+`)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("null value is rejected", func(t *testing.T) {
		_, err := ensure.MatchesPattern((*string)(nil), `.*`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ensure.ErrInvalidArgument)
	})

	t.Run("malformed pattern propagates the compile error", func(t *testing.T) {
		_, err := ensure.MatchesPattern("abc", `(`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ensure.ErrInvalidPattern)

		var syntaxErr *syntax.Error
		assert.True(t, errors.As(err, &syntaxErr))
	})
}

func TestIsInRange(t *testing.T) {
	minValue := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("at or after min", func(t *testing.T) {
		assert.True(t, ensure.IsInRange(minValue, minValue))
		assert.True(t, ensure.IsInRange(minValue.Add(time.Nanosecond), minValue))
		assert.False(t, ensure.IsInRange(minValue.Add(-time.Second), minValue))
	})

	t.Run("invariant under time zone of either argument", func(t *testing.T) {
		east := time.FixedZone("east", 5*60*60)
		west := time.FixedZone("west", -8*60*60)

		values := []time.Time{
			minValue.Add(-time.Hour),
			minValue,
			minValue.Add(time.Hour),
		}
		for _, v := range values {
			want := ensure.IsInRange(v.UTC(), minValue.UTC())
			assert.Equal(t, want, ensure.IsInRange(v.In(east), minValue.In(west)))
			assert.Equal(t, want, ensure.IsInRange(v.In(west), minValue.In(east)))
		}
	})
}
