// Package config provides configuration management for lex.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCacheTTL is used when cache_ttl is zero or unset.
const DefaultCacheTTL = time.Hour

// Config holds the lex configuration.
type Config struct {
	DictionaryKey string `yaml:"dictionary_key"`
	ThesaurusKey  string `yaml:"thesaurus_key,omitempty"`
	BaseURL       string `yaml:"base_url,omitempty"`
	CacheTTL      int    `yaml:"cache_ttl,omitempty"` // seconds; negative disables caching
	OutputFormat  string `yaml:"output_format,omitempty"`
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.DictionaryKey == "" {
		return errors.New("dictionary_key is required")
	}

	// Validate URL scheme
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "https://") {
		return errors.New("base_url must use https")
	}

	return nil
}

// NormalizeURL removes any trailing slash from the base URL.
func (c *Config) NormalizeURL() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// CacheEnabled reports whether responses should be cached.
func (c *Config) CacheEnabled() bool {
	return c.CacheTTL >= 0
}

// CacheDuration returns the response cache lifetime.
func (c *Config) CacheDuration() time.Duration {
	if c.CacheTTL <= 0 {
		return DefaultCacheTTL
	}
	return time.Duration(c.CacheTTL) * time.Second
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: LEX_* → MW_* → existing config value
func (c *Config) LoadFromEnv() {
	if key := getEnvWithFallback("LEX_DICTIONARY_KEY", "MW_DICTIONARY_KEY"); key != "" {
		c.DictionaryKey = key
	}
	if key := getEnvWithFallback("LEX_THESAURUS_KEY", "MW_THESAURUS_KEY"); key != "" {
		c.ThesaurusKey = key
	}
	if url := os.Getenv("LEX_BASE_URL"); url != "" {
		c.BaseURL = url
	}
	if ttl := os.Getenv("LEX_CACHE_TTL"); ttl != "" {
		if n, err := strconv.Atoi(ttl); err == nil {
			c.CacheTTL = n
		}
	}
	if format := os.Getenv("LEX_OUTPUT"); format != "" {
		c.OutputFormat = format
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lex", "config.yml")
	}

	// Fall back to ~/.config/lex/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".lex", "config.yml")
	}

	return filepath.Join(home, ".config", "lex", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
