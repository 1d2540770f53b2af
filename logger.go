package azure

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/azure/backend"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for azure and the libraries it drives.
// By default azure produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by azure:
//   - [slog.LevelDebug]: handle lifecycle (create, retain, release, double release)
//   - [slog.LevelWarn]: degraded rendering (unsupported antialias modes, format mismatches)
//
// The logger is also handed to the pinned library and to every registered
// library that implements backend.LoggerSetter.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	if lib := pinnedLibrary(); lib != nil {
		propagateLogger(lib, l)
	}
	for _, name := range backend.Available() {
		if lib := backend.Get(name); lib != nil {
			propagateLogger(lib, l)
		}
	}
}

// Logger returns the current logger used by azure.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func propagateLogger(lib backend.Library, l *slog.Logger) {
	if ls, ok := lib.(backend.LoggerSetter); ok {
		ls.SetLogger(l)
	}
}
