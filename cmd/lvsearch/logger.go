package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvsearch/config"
)

// newLogger builds a slog.Logger writing to w. It never touches the
// global logger, so every command invocation gets its own.
func newLogger(lc config.LogConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
