// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "empty falls back to info", level: "", want: slog.LevelInfo},
		{name: "unknown falls back to info", level: "verbose", want: slog.LevelInfo},
		{name: "uppercase is not accepted", level: "DEBUG", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}
}

func TestNewHandler_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "info", "text"))

	logger.Info("launch step", "step", "resolve")

	output := buf.String()
	assert.Contains(t, output, "launch step")
	assert.Contains(t, output, "step=resolve")
	assert.NotContains(t, output, "{")
}

func TestNewHandler_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "info", "json"))

	logger.Info("launch step", "step", "handoff")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "launch step", parsed["msg"])
	assert.Equal(t, "handoff", parsed["step"])
	assert.Equal(t, "INFO", parsed["level"])
}

func TestNewHandler_UnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "info", "xml"))

	logger.Info("fallback")

	assert.Contains(t, buf.String(), "fallback")
	assert.NotContains(t, buf.String(), "{")
}

func TestNewHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "warn", "text"))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSetupLogger_SetsDefaultLevel(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	ctx := context.Background()

	SetupLogger("debug", "text")
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))

	SetupLogger("error", "text")
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelError))
}

func TestWithComponent(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(newHandler(&buf, "info", "text")))

	WithComponent("launcher").Info("resolved install directory")

	output := buf.String()
	assert.Contains(t, output, "component=launcher")
	assert.Contains(t, output, "resolved install directory")
}

func TestWithComponent_PreservesLevel(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(newHandler(&buf, "warn", "text")))

	logger := WithComponent("update")
	logger.Info("filtered out")
	logger.Warn("release check failed")

	assert.NotContains(t, buf.String(), "filtered out")
	assert.Contains(t, buf.String(), "release check failed")
}
