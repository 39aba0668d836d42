package app

import (
	"io"
	"log/slog"
)

// newLogger builds the application logger from the validated config. It never
// touches the slog global: every App carries its own instance so tests can
// capture output in isolation.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(outW, opts)
	} else {
		handler = slog.NewJSONHandler(outW, opts)
	}
	return slog.New(handler)
}
