package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns the process logger on stdout. See newLogger.
func NewLogger(environment, level string) *slog.Logger {
	return newLogger(os.Stdout, environment, level)
}

// newLogger writes JSON records in production and text records elsewhere. level takes
// the slog names (debug, info, warn, error, optionally with an offset such as warn+2);
// an empty or unknown level means info.
func newLogger(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
