package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ensured/pkg/ensure"
	"github.com/dmitrymomot/ensured/pkg/logger"
	"github.com/dmitrymomot/ensured/pkg/outcome"
)

func TestErrorAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
	a := logger.Errors(nil, errors.New("b"))
	assert.Equal(t, "errors", a.Key)
	group := a.Value.Group()
	assert.Len(t, group, 1)
	assert.Equal(t, "1", group[0].Key)
}

func TestCheckAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "name"), logger.Field("name"))
	assert.Equal(t, slog.Attr{}, logger.Outcome(nil))

	o := outcome.Failure(ensure.NullArgument("name"))
	a := logger.Outcome(o)
	assert.Equal(t, "outcome", a.Key)
	resolved := a.Value.Resolve()
	assert.Equal(t, slog.KindGroup, resolved.Kind())

	g := logger.Group("check", logger.Field("name"))
	assert.Equal(t, "check", g.Key)
	assert.Len(t, g.Value.Group(), 1)
}

func TestOutcomeAttrTypedNil(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	var res *outcome.Outcome[string]
	require.NotPanics(t, func() {
		log.Info("checked", logger.Field("name"), logger.Outcome(res))
	})
	assert.NotContains(t, buf.String(), "panicked")
	assert.Contains(t, buf.String(), `"field":"name"`)
}
