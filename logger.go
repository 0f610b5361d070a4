package sketch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never
// build the record in the first place.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

func silentLogger() *slog.Logger { return slog.New(discard{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger sets the logger shared by sketch and its sub-packages.
// Nothing is logged until SetLogger is called; nil restores silence.
// It may be called while other goroutines are drawing.
//
// Levels:
//   - [slog.LevelDebug]: parallel lines in the solver, shape dispatch in
//     the renderer, backend registration and clipping
//   - [slog.LevelWarn]: shapes skipped while parsing a scene, drawing on a
//     backend that was not started
//
// Example:
//
//	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the shared logger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
