package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog.Logger tagged with the app name. Debug level
// also records the calling source line. The logger becomes slog's default so
// components built with a nil logger still write to it.
func NewLogger(level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	logger := slog.New(h).With(slog.String("app", "vaastu-overlay"))
	slog.SetDefault(logger)
	return logger
}
