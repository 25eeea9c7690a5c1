// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides environment-based configuration for the
// atlas launcher. Everything here is optional: the launcher runs with
// nothing set, and no flag or file is ever required.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds launcher configuration loaded from environment variables.
type Config struct {
	LogLevel     string // debug, info, warn, error (default: info)
	LogFormat    string // text, json (default: text)
	NoTips       bool   // suppress the tip draw entirely (default: false)
	CheckUpdates bool   // query GitHub for a newer release before launch (default: false)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// Load reads configuration from environment variables, with .env file as
// optional override. The .env file is loaded if present but errors are
// ignored if it doesn't exist.
func Load() (*Config, error) {
	// Try to load .env file (ignore if not found)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("ATLAS_LOG_LEVEL", "info"),
		LogFormat:    getEnv("ATLAS_LOG_FORMAT", "text"),
		NoTips:       getBoolEnv("ATLAS_NO_TIPS", false),
		CheckUpdates: getBoolEnv("ATLAS_CHECK_UPDATES", false),
	}

	// Validate log level
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid ATLAS_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels)
	}

	// Validate log format
	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid ATLAS_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves a boolean environment variable or returns a
// default value. If the value cannot be parsed as a bool, the default
// is returned.
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
