// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package logging configures the default slog logger for the launcher.
// Diagnostics always go to stderr: stdout belongs to the console
// sequence (banner, notice, tip) and, after the hand-off, to the
// bundled terminal itself.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger from config values.
// level: "debug", "info", "warn", "error"; format: "text", "json".
// Unknown values fall back to info/text.
func SetupLogger(level, format string) {
	slog.SetDefault(slog.New(newHandler(os.Stderr, level, format)))
}

// newHandler builds the handler for w. Split out so tests can observe
// handler behavior without touching the process-wide default.
func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLevel maps a config level string to a slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
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

// WithComponent returns a logger with the component field set.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
