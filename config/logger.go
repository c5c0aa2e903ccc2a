package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide slog.Logger. GO_ENV=production selects
// the JSON handler for log aggregation; every other environment gets the
// human-readable text handler. LOG_LEVEL (debug, info, warn, error) defaults
// to info and is case-insensitive.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
