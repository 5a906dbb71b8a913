package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs a JSON slog.Logger writing to stdout
func New(service, env, version, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, env, version, ParseLevel(level))
}

// NewWithWriter constructs a JSON slog.Logger at the provided level
func NewWithWriter(w io.Writer, service, env, version string, lvl slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})

	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("env", env),
		slog.String("version", version))
}

// ParseLevel maps a configured level name, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
