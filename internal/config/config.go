// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/recruit-matcher/internal/matching"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables (GEMINI_API_KEY, DATABASE_URL).
type Config struct {
	// Matching
	Weights           *matching.Weights `json:"weights,omitempty"`            // Dimension weights; must sum to 1.0
	FuzzyThreshold    int               `json:"fuzzy_threshold,omitempty"`    // Minimum fuzzy match score (0-100)
	SemanticThreshold float64           `json:"semantic_threshold,omitempty"` // Minimum semantic similarity (0-1)

	// Models
	Model          string `json:"model,omitempty"`           // Gemini model for extraction
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model

	// Infrastructure
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
}

// Default returns the built-in configuration defaults.
func Default() Config {
	weights := matching.DefaultWeights()
	return Config{
		Weights:           &weights,
		FuzzyThreshold:    matching.DefaultFuzzyThreshold,
		SemanticThreshold: matching.DefaultSemanticThreshold,
		Model:             "gemini-2.5-flash",
		EmbeddingModel:    "text-embedding-004",
		Port:              8080,
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values. An invalid
// weight configuration is fatal for the matcher that would be built from it.
func (c *Config) Validate() error {
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 100")
	}
	if c.SemanticThreshold < 0 || c.SemanticThreshold > 1 {
		return fmt.Errorf("config error: 'semantic_threshold' must be between 0 and 1")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Environment variables fill the API key and database URL when
// neither the file nor the defaults provide them.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.SemanticThreshold == 0 {
		result.SemanticThreshold = defaults.SemanticThreshold
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return result
}
