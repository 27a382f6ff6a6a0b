// Package config provides unified configuration for the typemap tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for building a registry and running the tools.
type Config struct {
	// Provider is a free-form label for the configured provider, used in
	// tool output only.
	Provider string `json:"provider" yaml:"provider"`

	// UDTPatterns lists extra UDT name resolution rules appended after the
	// built-in ones.
	UDTPatterns []UDTPatternConfig `json:"udt_patterns" yaml:"udt_patterns"`

	// Check configures the literal self-check tool.
	Check CheckConfig `json:"check" yaml:"check"`
}

// UDTPatternConfig binds a fully qualified type name suffix to a provider
// UDT name.
type UDTPatternConfig struct {
	// Suffix is the trailing identifier matched against a type's fully
	// qualified name
	Suffix string `json:"suffix" yaml:"suffix"`

	// TypeName is the provider named type the suffix resolves to
	TypeName string `json:"type_name" yaml:"type_name"`
}

// CheckConfig holds configuration for the literal self-check tool.
type CheckConfig struct {
	// Driver is the database/sql driver used to evaluate literals
	Driver string `json:"driver" yaml:"driver"`

	// DSN is the driver data source name
	DSN string `json:"dsn" yaml:"dsn"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: "sqlserver",
		Check: CheckConfig{
			Driver: "sqlite3",
			DSN:    ":memory:",
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the TYPEMAP_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("TYPEMAP_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("TYPEMAP_CHECK_DRIVER"); v != "" {
		cfg.Check.Driver = v
	}
	if v := os.Getenv("TYPEMAP_CHECK_DSN"); v != "" {
		cfg.Check.DSN = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}

	for i, p := range c.UDTPatterns {
		if p.Suffix == "" {
			return fmt.Errorf("udt_patterns[%d].suffix is required", i)
		}
		if p.TypeName == "" {
			return fmt.Errorf("udt_patterns[%d].type_name is required", i)
		}
	}

	if c.Check.Driver == "" {
		return fmt.Errorf("check.driver is required")
	}

	return nil
}
