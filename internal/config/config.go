// Package config loads the sketchdemo CLI's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable run configuration. Flags override whatever is
// loaded from the file.
type Config struct {
	// Size is the square surface size in pixels.
	Size int `yaml:"size"`
	// CaptureRoot enables frame capture under this directory when set.
	CaptureRoot string `yaml:"capture_root"`
	// Seed pins the run seed; omitted means a random seed per run.
	Seed *uint64 `yaml:"seed"`
	// Backend names the render backend (see the backend registry).
	Backend string `yaml:"backend"`
	// Frames limits headless runs; zero means unlimited.
	Frames int `yaml:"frames"`
	// DelayMs is the per-frame pacing delay in milliseconds.
	DelayMs int `yaml:"delay_ms"`
	// Journal is the path of the SQLite seed journal; empty disables it.
	Journal string `yaml:"journal"`

	Logging Logging `yaml:"logging"`
}

// Logging configures the CLI logger.
type Logging struct {
	Level string `yaml:"level"` // debug|info|warn|error
	File  string `yaml:"file"`  // optional rotated log file
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Size:    512,
		Backend: "software",
		Frames:  64,
		DelayMs: 16,
		Logging: Logging{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Size <= 0 {
		return cfg, fmt.Errorf("config: size must be positive, got %d", cfg.Size)
	}
	return cfg, nil
}
