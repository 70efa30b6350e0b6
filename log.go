package uitext

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for text engine logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

func init() {
	if os.Getenv("UITEXT_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the package logger for bake, resolution and lifecycle events.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
