package logger

import (
	"log/slog"
	"os"
)

// Log starts as the slog default so packages can log before Init runs
var Log = slog.Default()

// Init installs the JSON handler. Debug level is only enabled outside release mode.
func Init(production bool) {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}
