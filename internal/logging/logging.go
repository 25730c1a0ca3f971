package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New creates a console slog.Logger with the provided level string.
func New(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler)
}

// NewWithFile duplicates log output into a file in addition to stdout.
// When the file cannot be opened the logger falls back to console only.
func NewWithFile(level, path string) *slog.Logger {
	var out io.Writer = os.Stdout
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				out = io.MultiWriter(os.Stdout, f)
			}
		}
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler)
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
