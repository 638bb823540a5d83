// Package config holds the run configuration for tsxrename.
package config

import (
	"fmt"
	"strings"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an invalid configuration.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// DefaultDirectory is the component directory processed on every run,
// relative to the working directory.
const DefaultDirectory = "components/ui"

// DefaultExtensions returns the filename suffixes accepted by the directory filter.
func DefaultExtensions() []string {
	return []string{".tsx", ".TSX"}
}

// Configuration holds all settings for a run.
type Configuration struct {
	Directory  string   // Directory whose entries are renamed
	Extensions []string // Exact filename suffixes selected for renaming
}

// DefaultConfiguration returns the hardcoded configuration used by the CLI.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Directory:  DefaultDirectory,
		Extensions: DefaultExtensions(),
	}
}

// Validate checks that the configuration has all required fields.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "directory cannot be empty",
		}
	}

	if len(c.Extensions) == 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "extensions must contain at least one suffix",
		}
	}

	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("extensions[%d] must start with a dot, got %q", i, ext),
			}
		}
		if strings.ContainsAny(ext, "*?[]{}\\/") {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("extensions[%d] contains pattern characters: %q", i, ext),
			}
		}
	}

	return nil
}
