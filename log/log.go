// Package log routes the module's internal loggers to a caller-supplied slog.Handler. Logs are
// discarded until To is called, so library consumers that don't care about logging never see any
// output.
package log

import (
	"context"
	"log/slog"
	"sync/atomic"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
)

// Error returns a slog.Attr for the provided error under ErrorKey.
func Error(err error) slog.Attr {
	return slog.Any(ErrorKey, err)
}

// discardHandler discards all log output, equivalent to slog.DiscardHandler (which requires
// Go 1.24+).
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// swappableHandler delegates to whichever slog.Handler was most recently stored, falling back to
// discardHandler before the first To call.
type swappableHandler struct {
	h atomic.Pointer[slog.Handler]
}

func (s *swappableHandler) handler() slog.Handler {
	if h := s.h.Load(); h != nil {
		return *h
	}

	return discardHandler{}
}

func (s *swappableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.handler().Enabled(ctx, level)
}

func (s *swappableHandler) Handle(ctx context.Context, record slog.Record) error {
	return s.handler().Handle(ctx, record)
}

func (s *swappableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return s.handler().WithAttrs(attrs)
}

func (s *swappableHandler) WithGroup(name string) slog.Handler {
	return s.handler().WithGroup(name)
}

var _ slog.Handler = &swappableHandler{}

var sink = &swappableHandler{}

// To updates all slog.Logger objects used internally by this module to write to the provided
// slog.Handler.
func To(h slog.Handler) {
	sink.h.Store(&h)
}

// ForComponent constructs a slog.Logger for the specified component, stored in an attribute
// under ComponentKey.
func ForComponent(component string) *slog.Logger {
	return slog.New(sink).With(slog.String(ComponentKey, component))
}
