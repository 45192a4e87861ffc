package timeline

import (
	"log/slog"

	"github.com/solarlune/scrollstage/internal/logging"
)

var logger logging.Pointer

// SetLogger configures the logger used by the timeline package. By default, nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: sequence play, pause, and completion
//   - [slog.LevelInfo]: project readiness and state swaps
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by the timeline package.
func Logger() *slog.Logger {
	return logger.Load()
}
