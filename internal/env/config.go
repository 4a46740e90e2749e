// Copyright 2026 Martin Feller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package env resolves splitlog configuration from the process environment,
// layering documented defaults under whatever the environment provides.
package env

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Environment variable names recognized by the resolver.
const (
	envLogPath     = "LOG_PATH"     // Directory for log files
	envLogLevel    = "LOG_LEVEL"    // Minimum level to persist
	envLogMicrosec = "LOG_MICROSEC" // Whether timestamps carry microseconds
	envLogTimezone = "LOG_TIMEZONE" // Timezone for timestamp rendering

	// envTimezone is the secondary source for the timezone: consulted when
	// LOG_TIMEZONE is unset or empty, before the hardcoded default.
	envTimezone = "TIMEZONE"
)

// Default values used when the environment does not provide one.
const (
	defaultLogPath  = "/tmp/logs/"
	defaultLevel    = slog.LevelError
	defaultMicrosec = true
	defaultTimezone = "Europe/Berlin"
)

// Extended severity values above slog.LevelError, shared with the root
// package's Level constants. Defined here so level parsing does not depend
// on the root package.
const (
	levelNotice    slog.Level = 2
	levelCritical  slog.Level = 12
	levelAlert     slog.Level = 16
	levelEmergency slog.Level = 20
)

// Config holds the resolved configuration values. Once Load returns, the
// struct is read-only data; nothing mutates it at runtime.
type Config struct {
	Dir          string         // Target directory for log files
	MinLevel     slog.Level     // Minimum level to persist
	Microseconds bool           // Include fractional seconds in timestamps
	ZoneName     string         // Resolved timezone identifier
	Location     *time.Location // Loaded location for ZoneName
}

// Load resolves configuration from the environment, applying defaults for
// unset or empty values. The timezone is materialized into a
// *time.Location; an identifier the platform cannot load is a fatal
// configuration error, not a silent fallback.
func Load() (Config, error) {
	cfg := Config{
		Dir:          defaultLogPath,
		MinLevel:     defaultLevel,
		Microseconds: defaultMicrosec,
		ZoneName:     defaultTimezone,
	}

	if dir := os.Getenv(envLogPath); dir != "" {
		cfg.Dir = dir
	}
	cfg.MinLevel = parseLevelEnv(os.Getenv(envLogLevel), cfg.MinLevel)
	cfg.Microseconds = parseBoolEnv(os.Getenv(envLogMicrosec), cfg.Microseconds)

	// LOG_TIMEZONE wins; TIMEZONE is the secondary source.
	if tz := os.Getenv(envLogTimezone); tz != "" {
		cfg.ZoneName = tz
	} else if tz := os.Getenv(envTimezone); tz != "" {
		cfg.ZoneName = tz
	}

	loc, err := time.LoadLocation(cfg.ZoneName)
	if err != nil {
		return Config{}, fmt.Errorf("env: load timezone %q: %w", cfg.ZoneName, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// parseLevelEnv converts a level string from the environment into a
// slog.Level. It handles the standard slog levels plus the extended
// syslog-style severities. Falls back to the provided default if the string
// is empty or invalid.
func parseLevelEnv(levelStr string, defaultLvl slog.Level) slog.Level {
	trimmed := strings.ToLower(strings.TrimSpace(levelStr))
	if trimmed == "" {
		return defaultLvl
	}

	switch trimmed {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "notice":
		return levelNotice
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical":
		return levelCritical
	case "alert":
		return levelAlert
	case "emergency":
		return levelEmergency
	default:
		fmt.Fprintf(os.Stderr, "[splitlog config] WARNING: Invalid log level value %q in env var, defaulting to %v\n", levelStr, defaultLvl)
		return defaultLvl
	}
}

// parseBoolEnv converts a boolean string from the environment into a bool.
// It understands various representations (true/false, yes/no, 1/0, on/off).
// Falls back to the provided default if the string is empty or unrecognized.
func parseBoolEnv(boolStr string, defaultVal bool) bool {
	trimmed := strings.ToLower(strings.TrimSpace(boolStr))
	if trimmed == "" {
		return defaultVal
	}
	switch trimmed {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		fmt.Fprintf(os.Stderr, "[splitlog config] WARNING: Invalid boolean value %q in env var, defaulting to %v\n", boolStr, defaultVal)
		return defaultVal
	}
}
