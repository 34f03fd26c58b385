package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_WritesLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "error", errors.New("boom"))

	out := buf.String()
	for _, s := range []string{"DBG", "dbg", "a=1", "INF", "b=two", "WRN", "ERR", "error=boom"} {
		assert.Contains(t, out, s)
	}
}

func TestZerologLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "warn")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info").With("component", "router", "dangling")

	log.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "component=router")
	assert.Contains(t, buf.String(), "dangling=!MISSING")
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(FormatConsole, "info", &buf).(*ZerologLogger)
	assert.True(t, ok)

	_, ok = New(FormatText, "info", &buf).(*SlogLogger)
	assert.True(t, ok)

	l := New("unknown", "info", &buf)
	l.Info(context.Background(), "json line", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"json line"`)
}
