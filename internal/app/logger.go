package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/qreview-backend/internal/config"
)

// NewLogger builds the process logger on stderr, tags every record with the
// service name and build version, and installs it as the slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(
		slog.String("app", "qreview"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler picks JSON for "json" and a text handler with source locations
// for anything else.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	// UnmarshalText accepts debug/info/warn/error in any case.
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
