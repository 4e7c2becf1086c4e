// Package config loads the optional TOML configuration. Everything has a
// working default so the binary runs without any config file. Detector
// thresholds and the built-in directory denylist are intentionally absent:
// they are compatibility constants, not knobs.
package config

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Workers bounds the per-file analysis pool. Zero means NumCPU.
	Workers int `toml:"workers"`
	// HistoryPath enables the sqlite run-history store when non-empty.
	HistoryPath string `toml:"history_path"`
	// SkipGenerated skips files carrying a generated-code marker.
	SkipGenerated bool    `toml:"skip_generated"`
	Exclude       Exclude `toml:"exclude"`
}

// Exclude extends the built-in directory denylist with user glob patterns.
type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

func Default() *Config {
	return &Config{Workers: runtime.NumCPU()}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}
