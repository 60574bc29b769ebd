package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/jsonrdf/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "http://example.org/", cfg.BaseURI)
	assert.Equal(t, "http://schema.org/", cfg.SchemaURI)
	assert.Equal(t, "turtle", cfg.Format)
	assert.True(t, cfg.PrettyPrint)
	assert.True(t, cfg.GenerateSchema)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 1000, cfg.MaxDepth)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty base uri", func(c *config.Config) { c.BaseURI = "" }},
		{"empty schema uri", func(c *config.Config) { c.SchemaURI = "" }},
		{"unknown format", func(c *config.Config) { c.Format = "trix" }},
		{"non-positive depth", func(c *config.Config) { c.MaxDepth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("base_uri: http://data.test/\nformat: ntriples\npretty_print: false\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	// File fields override defaults, including explicit false booleans.
	assert.Equal(t, "http://data.test/", cfg.BaseURI)
	assert.Equal(t, "ntriples", cfg.Format)
	assert.False(t, cfg.PrettyPrint)

	// Omitted fields keep their defaults.
	assert.Equal(t, "http://schema.org/", cfg.SchemaURI)
	assert.True(t, cfg.GenerateSchema)
	assert.Equal(t, 1000, cfg.MaxDepth)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0644))
	_, err = config.LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.DefaultConfig()
	cfg.Format = "jsonld"
	cfg.Verbose = true
	require.NoError(t, cfg.SaveToFile(path))

	reloaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}
