// Package config loads the engine's tunable weights and thresholds,
// the only place in the engine where a caller can influence behavior
// without changing an Input field. Carried even though the original
// specification names "no persisted state" for the core pipeline: the
// config layer sits above it, the way an ambient concern does in every
// other layer of this codebase.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ElementWeights controls the five-element scoring contribution of a
// stem versus each hidden-stem role.
type ElementWeights struct {
	Stem     float64 `yaml:"stem"`
	Primary  float64 `yaml:"primary"`
	Middle   float64 `yaml:"middle"`
	Residual float64 `yaml:"residual"`
}

// StrengthThresholds controls the day-master strength classification
// boundaries, as fractions of the chart's total weighted score.
type StrengthThresholds struct {
	Strong float64 `yaml:"strong"`
	Weak   float64 `yaml:"weak"`
}

// Config bundles every tunable the engine reads.
type Config struct {
	ElementWeights     ElementWeights     `yaml:"elementWeights"`
	StrengthThresholds StrengthThresholds `yaml:"strengthThresholds"`
	Locale             string             `yaml:"locale"`
	LogLevel           string             `yaml:"logLevel"`
}

// Default returns the engine's built-in defaults, matching spec.md
// 4.7's stated weights (stem=1.0, primary=0.7, middle=0.3, residual=0.1)
// and thresholds (strong >= 0.5, weak <= 0.35).
func Default() *Config {
	return &Config{
		ElementWeights: ElementWeights{
			Stem:     1.0,
			Primary:  0.7,
			Middle:   0.3,
			Residual: 0.1,
		},
		StrengthThresholds: StrengthThresholds{
			Strong: 0.5,
			Weak:   0.35,
		},
		Locale:   "en",
		LogLevel: "info",
	}
}

// Load reads a YAML config file, starting from Default and overriding
// only the fields the file sets. A missing file is not an error;
// Default is returned unchanged. Malformed YAML is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
