package swatch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so Debug calls in
// the conversion paths cost a single atomic load.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// current holds the logger used by FromHSL and Generator.
var current = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(silent)
	return p
}()

// SetLogger routes swatch diagnostics to l; nil silences them again.
// swatch only logs at [slog.LevelDebug]: HSL inputs rejected by FromHSL
// and every color a Generator produces.
//
//	swatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger swatch writes to. Safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
