// Package config loads the optional psumon configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig `yaml:"device"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	// Path pins an explicit device node instead of enumerating.
	Path string `yaml:"path"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Format string `yaml:"format"` // "text" (default) or "json"
}

// ---- WATCH ----

type WatchConfig struct {
	IntervalMs int `yaml:"interval_ms"` // 0 = single snapshot
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Interval returns the watch interval, zero for single-shot mode.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Watch.IntervalMs) * time.Millisecond
}
