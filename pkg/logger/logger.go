// Package logger builds the root slog logger. Production and dev
// environments log JSON; local development gets a colored text handler.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New creates a logger for the given environment and level
func New(env, level string) *slog.Logger {
	lvl := parseLevel(level)

	if env == EnvLocal {
		return slog.New(newPrettyHandler(os.Stdout, lvl))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
