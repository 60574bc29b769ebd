// Package config provides configuration loading and management for
// jsonrdf.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/jsonrdf/export"
)

// Config holds the conversion settings.
type Config struct {
	// BaseURI is the prefix under which resource identifiers are minted.
	BaseURI string `yaml:"base_uri"`
	// SchemaURI is the prefix for emitted class terms.
	SchemaURI string `yaml:"schema_uri"`
	// Format is the output serialization format (turtle, ntriples, jsonld, rdfxml).
	Format string `yaml:"format"`
	// PrettyPrint affects only output formatting, never triple content.
	PrettyPrint bool `yaml:"pretty_print"`
	// GenerateSchema gates the rdf:type annotation of object resources.
	GenerateSchema bool `yaml:"generate_schema"`
	// Verbose emits run statistics to the diagnostic stream.
	Verbose bool `yaml:"verbose"`
	// MaxDepth bounds input nesting before conversion fails.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURI:        "http://example.org/",
		SchemaURI:      "http://schema.org/",
		Format:         string(export.FormatTurtle),
		PrettyPrint:    true,
		GenerateSchema: true,
		Verbose:        false,
		MaxDepth:       1000,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURI == "" {
		return fmt.Errorf("base_uri is required")
	}
	if c.SchemaURI == "" {
		return fmt.Errorf("schema_uri is required")
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults; fields absent from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := applyFile(config, path); err != nil {
		return nil, err
	}
	return config, nil
}

// applyFile unmarshals a YAML file over an existing config, so present
// fields (including explicit false booleans) override earlier layers.
func applyFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// SaveToFile writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
