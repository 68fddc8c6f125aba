// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the scoring knobs. They mirror the tuned values the matching
// model was calibrated with.
const (
	DefaultFuzzyThreshold     = 0.70
	DefaultSigmoidCenter      = 0.15
	DefaultSigmoidSteepness   = 20.0
	DefaultBaselineSampleSize = 100
	DefaultTopN               = 10
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to the jobs catalog JSON file
	Profile string `json:"profile,omitempty"` // Path to the candidate profile JSON file

	// Scoring
	FuzzyThreshold   float64 `json:"fuzzy_threshold,omitempty"`   // Minimum similarity for fuzzy keyword matching (0.0-1.0)
	SigmoidCenter    float64 `json:"sigmoid_center,omitempty"`    // Center of the sigmoid shaping curve
	SigmoidSteepness float64 `json:"sigmoid_steepness,omitempty"` // Steepness of the sigmoid shaping curve

	// Statistics
	BaselineSampleSize int   `json:"baseline_sample_size,omitempty"` // Record pairs sampled for the cosine baseline
	BaselineSeed       int64 `json:"baseline_seed,omitempty"`        // Seed for baseline pair sampling

	// Output
	TopN    int  `json:"top_n,omitempty"`   // Results returned per track
	Verbose bool `json:"verbose,omitempty"` // Print detailed match information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be in [0.0, 1.0]")
	}
	if c.SigmoidSteepness < 0 {
		return fmt.Errorf("config error: 'sigmoid_steepness' must be non-negative")
	}
	if c.BaselineSampleSize < 0 {
		return fmt.Errorf("config error: 'baseline_sample_size' must be non-negative")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from the
// built-in defaults. CLI flags are applied on top of the merged result.
func (c *Config) MergeWithDefaults() Config {
	result := *c

	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if result.SigmoidCenter == 0 {
		result.SigmoidCenter = DefaultSigmoidCenter
	}
	if result.SigmoidSteepness == 0 {
		result.SigmoidSteepness = DefaultSigmoidSteepness
	}
	if result.BaselineSampleSize == 0 {
		result.BaselineSampleSize = DefaultBaselineSampleSize
	}
	if result.TopN == 0 {
		result.TopN = DefaultTopN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
