// Package lintconfig loads tool settings for the dialplan validator from a
// YAML file. Settings cover behavior of the tool itself, never the grammar
// being checked.
package lintconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// configuration path is given.
const DefaultFileName = ".dialplan-validator.yaml"

// Config holds the tool settings.
type Config struct {
	// Strict makes warnings fail the run like errors do.
	Strict bool `yaml:"strict"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig controls the revalidate-on-change loop.
type WatchConfig struct {
	// DebounceMs is how long to coalesce change events before revalidating.
	DebounceMs int `yaml:"debounce_ms"`
}

// Debounce returns the debounce interval as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// Default returns the built-in settings used when no file is present.
func Default() *Config {
	return &Config{
		Watch: WatchConfig{DebounceMs: 200},
	}
}

// Load reads and validates the configuration file at path. Fields missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration file %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse configuration file %q: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that when path is empty the
// default file name is tried and its absence is not an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFileName); err != nil {
			return Default(), nil
		}
		path = DefaultFileName
	}
	return Load(path)
}

func validate(cfg *Config) error {
	if cfg.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", cfg.Watch.DebounceMs)
	}
	return nil
}
