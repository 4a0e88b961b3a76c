// Package buildlog holds the process-wide logger used by the build tool.
// The default logger discards everything; the app installs a real one once
// flags are parsed. Domain packages (border, mesh) never log.
package buildlog

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger { return loggerPtr.Load() }

// SetLogger replaces the logger; nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// New builds the CLI logger: text records on dst at Warn, Debug when
// verbose, nothing at all when quiet.
func New(dst io.Writer, quiet, verbose bool) *slog.Logger {
	if quiet {
		return slog.New(nopHandler{})
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}
