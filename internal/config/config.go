// Package config loads settings for the dicekeys command: built-in defaults,
// then an optional YAML file, then DICEKEYS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds command settings.
type Config struct {
	LogLevel  string `yaml:"log_level"  env:"DICEKEYS_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"DICEKEYS_LOG_FORMAT"`
	Output    string `yaml:"output"     env:"DICEKEYS_OUTPUT"`
	Workers   int    `yaml:"workers"    env:"DICEKEYS_WORKERS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Output:    OutputText,
		Workers:   4,
	}
}

// Load applies path (skipped when empty) and the environment over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output %q", ErrInvalid, c.Output)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}

	return nil
}
