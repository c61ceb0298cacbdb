// Package config reads gobounds settings from the environment and an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvWorkers  = "GOBOUNDS_WORKERS"
	EnvLogLevel = "GOBOUNDS_LOG_LEVEL"
	EnvDebounce = "GOBOUNDS_DEBOUNCE"
	EnvOpenSCAD = "GOBOUNDS_OPENSCAD"
)

// Config holds the runtime settings shared by all commands
type Config struct {
	Workers  int
	LogLevel slog.Level
	Debounce time.Duration
	OpenSCAD string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		LogLevel: slog.LevelInfo,
		Debounce: 500 * time.Millisecond,
		OpenSCAD: "openscad",
	}
}

// Load reads .env (if present) and then the environment. Variables already
// set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := ParseWorkers(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvDebounce); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("%s: negative duration %s", EnvDebounce, v)
		}
		cfg.Debounce = d
	}

	if v, ok := lookup(EnvOpenSCAD); ok && v != "" {
		cfg.OpenSCAD = v
	}

	return cfg, nil
}

// ParseWorkers parses a positive worker count
func ParseWorkers(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid worker count %q", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("worker count must be at least 1, got %d", n)
	}
	return n, nil
}

// ParseLevel accepts debug, info, warn and error in any case
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
