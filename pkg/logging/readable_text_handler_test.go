package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadableTextHandlerFormat(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(NewReadableTextHandler(&buf, &ReadableTextHandlerOptions{OmitTime: true}))
	logger.Info("Fetched manifest", slog.Int("entries", 3))

	assert.Equal("INFO|Fetched manifest|entries=3\n", buf.String())
}

func TestReadableTextHandlerGroupsAndAttrs(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(NewReadableTextHandler(&buf, &ReadableTextHandlerOptions{OmitTime: true}))
	logger = logger.With(slog.String("component", "selector")).WithGroup("state")
	logger.Info("Transition", slog.String("to", "done"), slog.Group("entry", slog.String("id", "1.20")))

	assert.Equal("INFO|Transition|component=selector, state.to=done, state.entry.id=1.20\n", buf.String())
}

func TestReadableTextHandlerLevel(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(NewReadableTextHandler(&buf, nil))
	logger.Debug("hidden")
	assert.Empty(buf.String())

	verbose := NewCliLogger(&buf, true)
	verbose.Debug("shown")
	assert.True(strings.HasSuffix(buf.String(), "|DEBUG|shown\n"))
}

func TestReadableTextHandlerSiblingLoggersDoNotShareAttrs(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	base := slog.New(NewReadableTextHandler(&buf, &ReadableTextHandlerOptions{OmitTime: true})).With("app", "gomanifest")
	first := base.With("datasource", "piston-manifest")
	second := base.With("component", "selector")

	first.Info("a")
	second.Info("b")
	base.WithGroup("empty").Info("c", slog.Group("none"))

	assert.Equal("INFO|a|app=gomanifest, datasource=piston-manifest\nINFO|b|app=gomanifest, component=selector\nINFO|c|app=gomanifest\n", buf.String())
}
