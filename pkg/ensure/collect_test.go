package ensure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ensured/pkg/ensure"
)

func TestCollect(t *testing.T) {
	t.Run("returns nil when every check passes", func(t *testing.T) {
		err := ensure.Collect(
			ensure.WhenNullOrWhitespace("bob", "name"),
			ensure.WhenLengthIsIncorrect("bob", 1, 8, "name"),
		)
		assert.NoError(t, err)
	})

	t.Run("keeps every failure in order", func(t *testing.T) {
		err := ensure.Collect(
			ensure.WhenNullOrWhitespace("", "name"),
			nil,
			ensure.WhenDoesNotMatchPattern("x y", `^\S+$`, "slug"),
		)
		require.Error(t, err)
		assert.True(t, ensure.IsValidationError(err))

		ve := ensure.ExtractValidationErrors(err)
		require.Len(t, ve, 2)
		assert.Equal(t, []string{"name", "slug"}, ve.Fields())
		assert.ErrorIs(t, err, ensure.ErrOutOfRange)
		assert.NotErrorIs(t, err, ensure.ErrInvalidArgument)
		assert.Equal(t, []string{"Value was out of range. Must not be empty."}, ve.Get("name"))
		assert.Equal(t,
			"validation failed: name: Value was out of range. Must not be empty.; slug: Value was out of range. Must match the pattern ^\\S+$.",
			err.Error())
	})

	t.Run("wraps foreign errors", func(t *testing.T) {
		plain := errors.New("boom")
		ve := ensure.ExtractValidationErrors(ensure.Collect(plain))
		require.Len(t, ve, 1)
		assert.Equal(t, ensure.KindInvalidArgument, ve[0].Kind)
		assert.ErrorIs(t, ve[0], plain)
		assert.Equal(t, "boom", ve[0].Message)
	})

	t.Run("flattens nested collections", func(t *testing.T) {
		inner := ensure.Collect(ensure.WhenNull(nil, "a"), ensure.WhenNull(nil, "b"))
		outer := ensure.Collect(fmt.Errorf("wrapped: %w", inner), ensure.WhenNull(nil, "c"))

		ve := ensure.ExtractValidationErrors(outer)
		assert.Equal(t, []string{"a", "b", "c"}, ve.Fields())
	})
}

func TestValidationErrors(t *testing.T) {
	var ve ensure.ValidationErrors
	assert.True(t, ve.IsEmpty())
	assert.Equal(t, "validation failed", ve.Error())

	ve = append(ve, ensure.NullArgument("email"), ensure.OutOfRange("email", "x", "too short"))
	assert.False(t, ve.IsEmpty())
	assert.Equal(t, []string{"email"}, ve.Fields())
	assert.Len(t, ve.Get("email"), 2)

	assert.Nil(t, ensure.ExtractValidationErrors(nil))
	assert.Nil(t, ensure.ExtractValidationErrors(errors.New("other")))
	assert.False(t, ensure.IsValidationError(nil))
}

func TestErrorKinds(t *testing.T) {
	t.Run("sentinels match only their kind", func(t *testing.T) {
		null := ensure.NullArgument("p")
		assert.ErrorIs(t, null, ensure.ErrNullArgument)
		assert.NotErrorIs(t, null, ensure.ErrOutOfRange)
		assert.NotErrorIs(t, null, ensure.ErrInvalidArgument)

		rng := ensure.OutOfRange("p", nil, "")
		assert.ErrorIs(t, rng, ensure.ErrOutOfRange)
		assert.Equal(t, "Specified argument was out of the range of valid values. (Parameter 'p')", rng.Error())
	})

	t.Run("kind names", func(t *testing.T) {
		assert.Equal(t, "null_argument", ensure.KindNullArgument.String())
		assert.Equal(t, "out_of_range", ensure.KindOutOfRange.String())
		assert.Equal(t, "invalid_argument", ensure.KindInvalidArgument.String())
		assert.Equal(t, "unknown", ensure.Kind(0).String())
	})

	t.Run("log value includes the attempted value", func(t *testing.T) {
		v := ensure.OutOfRange("age", 7, "too young").LogValue()
		attrs := v.Group()
		require.Len(t, attrs, 4)
		assert.Equal(t, "out_of_range", attrs[0].Value.String())
		assert.Equal(t, "age", attrs[1].Value.String())
		assert.Equal(t, int64(7), attrs[3].Value.Int64())
	})
}
