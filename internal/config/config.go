// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Resume         string `json:"resume,omitempty"`          // Path to resume PDF
	JobDescription string `json:"job_description,omitempty"` // Job description text or path to a text file
	Format         string `json:"format,omitempty"`          // Output format: pdf or docx
	Output         string `json:"output,omitempty"`          // Output base path (no extension)
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	Debug          bool   `json:"debug,omitempty"`           // Dump intermediate JSON records
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed stage summaries
}

// LoadConfig loads configuration from a JSON file.
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
// Required fields are not checked here; they are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != "pdf" && c.Format != "docx" {
		return &ConfigurationError{
			Message: fmt.Sprintf("invalid format %q: must be pdf or docx", c.Format),
		}
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return &ConfigurationError{
				Message: fmt.Sprintf("resume file not found: %s", c.Resume),
			}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if !result.Debug {
		result.Debug = defaults.Debug
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// ResolveAPIKey returns the API key to use, preferring the explicit value over
// the environment. The key is read once at startup; absence is a fatal
// configuration error reported before any processing begins.
func ResolveAPIKey(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", &ConfigurationError{
		Message: fmt.Sprintf("missing API key: set the %s environment variable or pass --api-key", EnvAPIKey),
	}
}
