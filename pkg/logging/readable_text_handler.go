package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// A slog handler that writes one pipe separated line per record:
// date|time|LEVEL|message|key=value, key=value
type ReadableTextHandler struct {
	options ReadableTextHandlerOptions
	mu      *sync.Mutex
	out     io.Writer
	// Prefix of the open groups, eg. "state.entry."
	keyPrefix string
	// Attributes added with "With", already rendered with the prefix that was open at that time.
	rendered []string
}

type ReadableTextHandlerOptions struct {
	// The minimum level to write. Defaults to info.
	Level slog.Leveler
	// Omits the date and time columns.
	OmitTime bool
}

func NewReadableTextHandler(out io.Writer, options *ReadableTextHandlerOptions) *ReadableTextHandler {
	if options == nil {
		options = &ReadableTextHandlerOptions{}
	}
	handler := &ReadableTextHandler{out: out, mu: &sync.Mutex{}, options: *options}
	if handler.options.Level == nil {
		handler.options.Level = slog.LevelInfo
	}
	return handler
}

func (h *ReadableTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.options.Level.Level()
}

func (h *ReadableTextHandler) Handle(ctx context.Context, record slog.Record) error {
	columns := make([]string, 0, 5)
	if !h.options.OmitTime {
		columns = append(columns, record.Time.Format("2006.01.02"), record.Time.Format("15:04:05.000"))
	}
	columns = append(columns, record.Level.String(), record.Message)

	attrs := slices.Clone(h.rendered)
	record.Attrs(func(a slog.Attr) bool {
		attrs = appendAttr(attrs, h.keyPrefix, a)
		return true
	})
	if len(attrs) > 0 {
		columns = append(columns, strings.Join(attrs, ", "))
	}

	line := strings.Join(columns, "|") + "\n"
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *ReadableTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.keyPrefix += name + "."
	return &h2
}

func (h *ReadableTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.rendered = slices.Clip(slices.Clone(h.rendered))
	for _, a := range attrs {
		h2.rendered = appendAttr(h2.rendered, h.keyPrefix, a)
	}
	return &h2
}

// Renders the attribute as key=value, groups are flattened into dotted keys. Empty attributes and groups are dropped.
func appendAttr(target []string, keyPrefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return target
	}
	if a.Value.Kind() != slog.KindGroup {
		return append(target, fmt.Sprintf("%s%s=%s", keyPrefix, a.Key, a.Value.String()))
	}
	if a.Key != "" {
		keyPrefix += a.Key + "."
	}
	for _, groupAttr := range a.Value.Group() {
		target = appendAttr(target, keyPrefix, groupAttr)
	}
	return target
}

// Creates a logger with the readable handler for the cli.
func NewCliLogger(out io.Writer, verbose bool) *slog.Logger {
	level := lo.Ternary(verbose, slog.LevelDebug, slog.LevelInfo)
	return slog.New(NewReadableTextHandler(out, &ReadableTextHandlerOptions{Level: level}))
}
