package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: output.format must be %q or %q, got %q",
			"text", "json", cfg.Output.Format)
	}

	if cfg.Watch.IntervalMs < 0 {
		return fmt.Errorf("config: watch.interval_ms must be >= 0, got %d",
			cfg.Watch.IntervalMs)
	}

	return nil
}
