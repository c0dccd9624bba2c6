// Package config provides engine configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-match-engine/internal/scoring"
)

// Config is the engine configuration that can be loaded from a JSON file.
// All fields are optional; missing values fall back to defaults.
type Config struct {
	// Data files. Empty paths use the embedded defaults.
	CatalogPath string `json:"catalog_path,omitempty"` // Keyword catalogue override
	LexiconPath string `json:"lexicon_path,omitempty"` // Weak-phrase lexicon override

	// Analysis behavior
	DefaultIndustry string `json:"default_industry,omitempty"` // Industry tag when the caller gives none
	MaxSuggestions  int    `json:"max_suggestions,omitempty" validate:"gte=0"`

	// Prediction cache
	CacheTTL      string `json:"cache_ttl,omitempty"` // Go duration string, e.g. "1h"
	CacheCapacity int    `json:"cache_capacity,omitempty" validate:"gte=0"`

	// Scoring overrides the built-in weight tables when present.
	Scoring *scoring.Config `json:"scoring,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DefaultIndustry: "general",
		MaxSuggestions:  10,
		CacheTTL:        "1h",
		CacheCapacity:   1000,
	}
}

// Load reads configuration from a JSON file and merges it over the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return loaded.mergeWithDefaults(cfg), nil
}

// Validate checks field values and the scoring override if present.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := c.TTL(); err != nil {
		return err
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}
	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	if c.Scoring != nil {
		if err := c.Scoring.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// TTL parses the cache TTL duration string.
func (c Config) TTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid cache_ttl %q: %w", c.CacheTTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("config error: cache_ttl must be positive, got %s", ttl)
	}
	return ttl, nil
}

// ScoringConfig returns the scoring override, or the built-in defaults.
func (c Config) ScoringConfig() scoring.Config {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return scoring.DefaultConfig()
}

// mergeWithDefaults fills zero-valued fields from defaults. Bool fields would
// be ambiguous here; the config deliberately has none.
func (c Config) mergeWithDefaults(defaults Config) Config {
	result := c
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.DefaultIndustry == "" {
		result.DefaultIndustry = defaults.DefaultIndustry
	}
	if result.MaxSuggestions == 0 {
		result.MaxSuggestions = defaults.MaxSuggestions
	}
	if result.CacheTTL == "" {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.CacheCapacity == 0 {
		result.CacheCapacity = defaults.CacheCapacity
	}
	if result.Scoring == nil {
		result.Scoring = defaults.Scoring
	}
	return result
}
