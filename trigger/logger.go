package trigger

import (
	"log/slog"

	"github.com/solarlune/scrollstage/internal/logging"
)

var logger logging.Pointer

// SetLogger configures the logger used by the trigger package. By default, nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: discarded events and issued play commands
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger used by the trigger package.
func Logger() *slog.Logger {
	return logger.Load()
}
