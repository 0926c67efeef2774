// Package config loads gridpath settings from the environment, with an
// optional .env file read first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHeight    = "GRIDPATH_HEIGHT"
	EnvWidth     = "GRIDPATH_WIDTH"
	EnvAlgorithm = "GRIDPATH_ALGORITHM"
	EnvLogLevel  = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat = "GRIDPATH_LOG_FORMAT"
	EnvAddr      = "GRIDPATH_ADDR"
)

// ErrInvalidValue is returned when a variable is set but cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Height    int    // Grid rows when no scenario is given
	Width     int    // Grid columns when no scenario is given
	Algorithm string // Algorithm name, mapped by the cli package
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	Addr      string // Listen address of the step server
}

// Default returns the built-in settings: a 25×40 grid searched with A*.
func Default() Config {
	return Config{
		Height:    25,
		Width:     40,
		Algorithm: "astar",
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      ":8080",
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// builds a Config from GRIDPATH_* variables over Default.
// Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading env file: %w", err)
		}
		slog.Debug(".env file not found, using process environment only", "error", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from GRIDPATH_* variables over Default.
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		Algorithm: getEnvWithDefault(EnvAlgorithm, def.Algorithm),
		LogLevel:  getEnvWithDefault(EnvLogLevel, def.LogLevel),
		LogFormat: getEnvWithDefault(EnvLogFormat, def.LogFormat),
		Addr:      getEnvWithDefault(EnvAddr, def.Addr),
	}

	var err error
	if cfg.Height, err = getEnvAsPositiveInt(EnvHeight, def.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = getEnvAsPositiveInt(EnvWidth, def.Width); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsPositiveInt retrieves an environment variable as an integer > 0.
func getEnvAsPositiveInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, key, value)
	}
	return value, nil
}
