package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/thruflo/pipemaze/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultCacheSize     = 64
	DefaultLogLevel      = "warn"
	DefaultInsideMarker  = "I"
	DefaultOutsideMarker = "O"
)

// Dir is the per-project configuration directory.
const Dir = ".pipemaze"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Solver:  SolverConfig{CacheSize: DefaultCacheSize},
		Logging: LoggingConfig{Level: DefaultLogLevel},
		Render: RenderConfig{
			InsideMarker:  DefaultInsideMarker,
			OutsideMarker: DefaultOutsideMarker,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads .pipemaze/config.yaml from basePath, applies overrides
// from .pipemaze/.env and then the process environment, and validates the
// result. A missing config file yields the defaults.
func LoadConfig(basePath string) (*Config, error) {
	return LoadConfigWithEnv(basePath, os.LookupEnv)
}

// LoadConfigWithEnv is LoadConfig with an explicit environment lookup.
func LoadConfigWithEnv(basePath string, lookup LookupFunc) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(basePath, Dir, "config.yaml"))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fileEnv, err := LoadEnvFile(basePath)
	if err != nil {
		return nil, err
	}
	resolve := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := applyEnv(&cfg, resolve); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFile reads KEY=VALUE pairs from .pipemaze/.env. A missing file
// yields an empty map.
func LoadEnvFile(basePath string) (map[string]string, error) {
	env, err := godotenv.Read(filepath.Join(basePath, Dir, ".env"))
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return env, nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ValidationError{Field: EnvCacheSize, Message: fmt.Sprintf("not an integer: %q", v)}
		}
		cfg.Solver.CacheSize = n
	}
	if v, ok := lookup(EnvInsideMarker); ok {
		cfg.Render.InsideMarker = v
	}
	if v, ok := lookup(EnvOutsideMarker); ok {
		cfg.Render.OutsideMarker = v
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Solver.CacheSize < 0 {
		return ValidationError{Field: "solver.cache_size", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return ValidationError{Field: "logging.level", Message: err.Error()}
	}
	if err := validateMarker("render.inside_marker", cfg.Render.InsideMarker); err != nil {
		return err
	}
	if err := validateMarker("render.outside_marker", cfg.Render.OutsideMarker); err != nil {
		return err
	}
	return nil
}

func validateMarker(field, marker string) error {
	if len(marker) != 1 || marker == "\n" {
		return ValidationError{Field: field, Message: "must be a single printable byte"}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
