package logger

import (
	"context"
	"log/slog"
	"strings"
)

// RedactedValue replaces secret attribute values.
const RedactedValue = "[REDACTED]"

var defaultRedactedKeys = []string{"token", "authorization", "jwt_key", "secret"}

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler, injects attributes from context
// and redacts secret values before they reach the output.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// NewLogHandlerDecorator creates a decorated handler. Keys in redact are
// matched case-insensitively, in addition to the built-in secret keys.
func NewLogHandlerDecorator(next slog.Handler, redact []string, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	keys := make(map[string]struct{}, len(defaultRedactedKeys)+len(redact))
	for _, k := range defaultRedactedKeys {
		keys[k] = struct{}{}
	}
	for _, k := range redact {
		keys[strings.ToLower(k)] = struct{}{}
	}
	return &LogHandlerDecorator{next: next, extractors: clean, redact: keys}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle redacts secrets, adds context attributes and delegates.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.scrub(a))
		return true
	})
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			out.AddAttrs(h.scrub(attr))
		}
	}
	return h.next.Handle(ctx, out)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = h.scrub(a)
	}
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(scrubbed),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) scrub(a slog.Attr) slog.Attr {
	if _, ok := h.redact[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, RedactedValue)
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		scrubbed := make([]slog.Attr, len(group))
		for i, ga := range group {
			scrubbed[i] = h.scrub(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(scrubbed...)}
	}
	return a
}
