// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the application needs at startup.
type Config struct {
	// CatalogPath is the JSON tea catalog.
	CatalogPath string `yaml:"catalog_path"`
	// BenefitsPath is the tea-benefit association CSV.
	BenefitsPath string `yaml:"benefits_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// MaxRecommendations caps the recommendation query result.
	MaxRecommendations int `yaml:"max_recommendations"`
	// MetricsAddr, when set, serves prometheus metrics on that address.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		CatalogPath:        "teadata.json",
		BenefitsPath:       "teabenefits.csv",
		LogLevel:           "info",
		MaxRecommendations: 5,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path must not be empty")
	}
	if c.BenefitsPath == "" {
		return fmt.Errorf("benefits_path must not be empty")
	}
	if c.MaxRecommendations < 1 {
		return fmt.Errorf("max_recommendations must be at least 1, got %d", c.MaxRecommendations)
	}
	return nil
}
