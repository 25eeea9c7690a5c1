// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any env vars that might affect the test
	os.Unsetenv("ATLAS_LOG_LEVEL")
	os.Unsetenv("ATLAS_LOG_FORMAT")
	os.Unsetenv("ATLAS_NO_TIPS")
	os.Unsetenv("ATLAS_CHECK_UPDATES")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.NoTips)
	assert.False(t, cfg.CheckUpdates)
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("ATLAS_LOG_LEVEL", "debug")
	t.Setenv("ATLAS_LOG_FORMAT", "json")
	t.Setenv("ATLAS_NO_TIPS", "true")
	t.Setenv("ATLAS_CHECK_UPDATES", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.NoTips)
	assert.True(t, cfg.CheckUpdates)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("ATLAS_LOG_LEVEL", "invalid")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ATLAS_LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("ATLAS_LOG_FORMAT", "xml")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ATLAS_LOG_FORMAT")
}

func TestLoad_InvalidBool_UsesDefault(t *testing.T) {
	t.Setenv("ATLAS_NO_TIPS", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	// Invalid bool falls back to default
	assert.False(t, cfg.NoTips)
}

func TestLoad_AllLogLevels(t *testing.T) {
	for _, level := range validLogLevels {
		t.Setenv("ATLAS_LOG_LEVEL", level)
		cfg, err := Load()
		require.NoError(t, err, "log level %s should be valid", level)
		assert.Equal(t, level, cfg.LogLevel)
	}
}

func TestLoad_AllLogFormats(t *testing.T) {
	for _, format := range validLogFormats {
		t.Setenv("ATLAS_LOG_FORMAT", format)
		cfg, err := Load()
		require.NoError(t, err, "log format %s should be valid", format)
		assert.Equal(t, format, cfg.LogFormat)
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true", value: "true", want: true},
		{name: "one", value: "1", want: true},
		{name: "false", value: "false", want: false},
		{name: "zero", value: "0", want: false},
		{name: "garbage falls back to default", value: "maybe", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ATLAS_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, getBoolEnv("ATLAS_TEST_BOOL", true))
		})
	}
}
