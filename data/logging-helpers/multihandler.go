package logginghelpers

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans each record out to every handler that accepts its level,
// so the console and the json log file can share one logger
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (h *MultiHandler) AddHandler(handler slog.Handler) {
	h.handlers = append(h.handlers, handler)
}

// enabled when any handler is
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// a failing handler does not stop the others, all errors are joined
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

func (h *MultiHandler) derive(with func(slog.Handler) slog.Handler) *MultiHandler {
	handlers := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		handlers = append(handlers, with(handler))
	}
	return &MultiHandler{handlers: handlers}
}
