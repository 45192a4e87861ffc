// Package logging holds the silent-by-default logger shared by the packages that log.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var discard = slog.New(nopHandler{})

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return discard
}

// Pointer holds a package's logger and is safe for concurrent use. The zero value logs nothing.
type Pointer struct {
	ptr atomic.Pointer[slog.Logger]
}

// Set replaces the logger; nil restores the silent default.
func (p *Pointer) Set(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	p.ptr.Store(l)
}

// Load returns the current logger.
func (p *Pointer) Load() *slog.Logger {
	if l := p.ptr.Load(); l != nil {
		return l
	}
	return discard
}
