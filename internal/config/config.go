// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Resume      string `json:"resume,omitempty"`       // Path to resume JSON file
	CoverLetter string `json:"cover_letter,omitempty"` // Path to cover-letter JSON file
	Theme       string `json:"theme,omitempty"`        // Path to theme JSON file

	// Output
	Out      string `json:"out,omitempty"`      // Output .docx path (or directory in both-separate mode)
	Combined bool   `json:"combined,omitempty"` // Merge cover letter and resume into one document

	// Behavior
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed render summaries
	SkipValidation bool `json:"skip_validation,omitempty"` // Skip JSON Schema validation of inputs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields or cross-field rules such as
// combined mode needing both inputs; those are enforced on the merged
// flag+config state, where a flag may supply what the file leaves out.
func (c *Config) Validate() error {
	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"resume":       c.Resume,
		"cover_letter": c.CoverLetter,
		"theme":        c.Theme,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}
