package studio

import (
	"log/slog"

	"github.com/solarlune/scrollstage/internal/logging"
)

var logger logging.Pointer

// SetLogger configures the logger used by the studio package. By default, nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: ignored file events
//   - [slog.LevelInfo]: loaded, saved, and applied states
//   - [slog.LevelWarn]: state files or saved states that fail to load or apply
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by the studio package.
func Logger() *slog.Logger {
	return logger.Load()
}
