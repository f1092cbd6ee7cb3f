// Package config holds the runtime configuration: an optional YAML file,
// overridden by environment variables, overridden again by flags in cmd.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	// Participants is the path to the roster file, one name per line.
	Participants string `yaml:"participants"`
	// TickMs is the animation frame interval in milliseconds.
	TickMs int `yaml:"tick_ms"`
	// Sound toggles the click and fanfare effects.
	Sound bool `yaml:"sound"`
	// WinnerLog is the path of the append-only round log, empty to disable.
	WinnerLog string `yaml:"winner_log"`
	// Seed seeds the spin RNG, 0 for time-based.
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Participants: "participants.txt",
		TickMs:       100,
		Sound:        true,
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Config file is optional.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.TickMs <= 0 {
		return cfg, fmt.Errorf("tick_ms must be positive, got %d", cfg.TickMs)
	}
	if cfg.Participants == "" {
		return cfg, fmt.Errorf("participants path must not be empty")
	}
	return cfg, nil
}

// applyEnv layers PRIZEWHEEL_* variables over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PRIZEWHEEL_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sound = b
		}
	}
	if v := os.Getenv("PRIZEWHEEL_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TickMs = n
		}
	}
	if v := os.Getenv("PRIZEWHEEL_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
}

// TickInterval returns the frame interval as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
