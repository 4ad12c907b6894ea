// Package config holds the genomekit configuration, loaded from a YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all genomekit settings.
type Config struct {
	// Path to the instruction-set table file.
	InstSet string `yaml:"inst_set"`

	// Default output paths for the two conversions.
	Output OutputConfig `yaml:"output"`

	// Plot rendering defaults.
	Plot PlotConfig `yaml:"plot"`
}

// OutputConfig names the files conversions are written to when the
// command line does not say otherwise.
type OutputConfig struct {
	Names string `yaml:"names"` // decoded name listing
	Chars string `yaml:"chars"` // encoded symbol string
}

// PlotConfig configures chart rendering defaults.
type PlotConfig struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
	Out    string `yaml:"out"` // output image path
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InstSet: "inst_set.txt",
		Output: OutputConfig{
			Names: "converted_symbol_list.org",
			Chars: "converted_name_list.org",
		},
		Plot: PlotConfig{
			Title:  "Fitness over Time",
			XLabel: "UD",
			YLabel: "Fitness",
			Out:    "Fitness.png",
		},
	}
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GENOMEKIT_INST_SET"); v != "" {
		c.InstSet = v
	}
}
