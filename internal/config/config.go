// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the recipe-bot process
type Config struct {
	// Library configuration
	RootDir     string `env:"RECIPE_BOT_DIR" envDefault:""`
	DatasetFile string `env:"RECIPE_BOT_DATASET_FILE" envDefault:"trans_evals_synthetic_data.json"`

	// Recipe generation configuration
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY" envDefault:""`
	RecipeModel      string `env:"RECIPE_BOT_MODEL" envDefault:"openrouter/auto"`

	// Presentation configuration
	SampleLimit int    `env:"RECIPE_BOT_SAMPLE_LIMIT" envDefault:"3"`
	Theme       string `env:"GLAMOUR_STYLE" envDefault:""`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatasetFile == "" {
		return fmt.Errorf("RECIPE_BOT_DATASET_FILE must not be empty")
	}

	if c.SampleLimit < 0 {
		return fmt.Errorf("RECIPE_BOT_SAMPLE_LIMIT must not be negative")
	}

	return nil
}
