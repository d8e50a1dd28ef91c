package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor reads one request-scoped attribute from ctx.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator adds the attributes found by its extractors to every
// record before passing it on.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	d := &LogHandlerDecorator{next: next}
	for _, ex := range extractors {
		if ex != nil {
			d.extractors = append(d.extractors, ex)
		}
	}
	return d
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil && len(h.extractors) > 0 {
		attrs := make([]slog.Attr, 0, len(h.extractors))
		for _, ex := range h.extractors {
			if attr, ok := ex(ctx); ok {
				attrs = append(attrs, attr)
			}
		}
		if len(attrs) > 0 {
			rec = rec.Clone()
			rec.AddAttrs(attrs...)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.wrap(h.next.WithAttrs(attrs))
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return h.wrap(h.next.WithGroup(name))
}

func (h *LogHandlerDecorator) wrap(next slog.Handler) *LogHandlerDecorator {
	return &LogHandlerDecorator{next: next, extractors: h.extractors}
}
