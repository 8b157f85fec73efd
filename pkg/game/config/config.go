// Package config loads command-line defaults from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvSize      = "GRIDPATH_SIZE"
	EnvWidth     = "GRIDPATH_WIDTH"
	EnvStepDelay = "GRIDPATH_STEP_DELAY"
	EnvNoColor   = "GRIDPATH_NO_COLOR"
	EnvLocale    = "GRIDPATH_LOCALE_FILE"
)

// Defaults matching the reference window: 50 rows in 800 pixels.
const (
	DefaultSize  = 50
	DefaultWidth = 800
)

// Config holds the application's configuration values.
type Config struct {
	Size       int           // Rows (and columns) in the grid
	Width      int           // Pixel width of the drawing area; cell size is Width / Size
	StepDelay  time.Duration // Pause after each rendered search step
	NoColor    bool          // Disable ANSI colors
	LocaleFile string        // Optional PO file replacing the embedded messages
}

// CellSize returns the pixel width of one cell
func (c Config) CellSize() int {
	if c.Size <= 0 {
		return 0
	}
	return c.Width / c.Size
}

// Validate checks that the grid geometry is usable
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config: %s must be positive, got %d", EnvSize, c.Size)
	}
	if c.CellSize() <= 0 {
		return fmt.Errorf("config: %s=%d too small for %d rows", EnvWidth, c.Width, c.Size)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("config: %s must not be negative", EnvStepDelay)
	}
	return nil
}

// Load reads the given .env files (".env" when none are given) and builds a
// Config from the environment. Missing files are logged, not fatal.
func Load(logger *log.Logger, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && logger != nil {
		logger.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() (Config, error) {
	size, err := getEnvAsInt(EnvSize, DefaultSize)
	if err != nil {
		return Config{}, err
	}
	width, err := getEnvAsInt(EnvWidth, DefaultWidth)
	if err != nil {
		return Config{}, err
	}
	delay, err := getEnvAsDuration(EnvStepDelay, 0)
	if err != nil {
		return Config{}, err
	}
	noColor, err := getEnvAsBool(EnvNoColor, false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Size:       size,
		Width:      width,
		StepDelay:  delay,
		NoColor:    noColor,
		LocaleFile: getEnvWithDefault(EnvLocale, ""),
	}
	return cfg, cfg.Validate()
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return value, nil
}
