package convert_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/jsonrdf/config"
	"github.com/c360studio/jsonrdf/convert"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = "ntriples"
	c := convert.New(cfg, nil)

	input := writeInput(t, `{"person":{"name":"John Doe","age":30,"email":"john.doe@example.com"}}`)

	result, err := c.ConvertFile(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Stats.Triples)
	assert.Equal(t, 2, result.Stats.Resources)
	assert.NotEmpty(t, result.Stats.RunID)
	assert.Contains(t, result.Output,
		`<http://example.org/root_person> <http://example.org/age> "30"^^<http://www.w3.org/2001/XMLSchema#integer> .`)
}

func TestConvertFileDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	c := convert.New(cfg, nil)
	input := writeInput(t, `{"b":[1,2,{"c":"2024-02-02"}],"a":{"x":null,"y":true}}`)

	first, err := c.ConvertFile(context.Background(), input)
	require.NoError(t, err)
	second, err := c.ConvertFile(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Output, second.Output)
}

func TestConvertFileErrors(t *testing.T) {
	t.Run("input not found", func(t *testing.T) {
		c := convert.New(config.DefaultConfig(), nil)
		_, err := c.ConvertFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, convert.ErrInputNotFound)
	})

	t.Run("invalid json", func(t *testing.T) {
		c := convert.New(config.DefaultConfig(), nil)
		input := writeInput(t, `{"broken":`)
		_, err := c.ConvertFile(context.Background(), input)
		assert.ErrorIs(t, err, convert.ErrInvalidJSON)
	})

	t.Run("unsupported format fails before reading input", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Format = "trix"
		c := convert.New(cfg, nil)
		_, err := c.ConvertFile(context.Background(), filepath.Join(t.TempDir(), "never-read.json"))
		assert.ErrorIs(t, err, convert.ErrUnsupportedFormat)
	})

	t.Run("depth limit", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.MaxDepth = 2
		c := convert.New(cfg, nil)
		input := writeInput(t, `{"a":{"b":{"c":{"d":1}}}}`)
		_, err := c.ConvertFile(context.Background(), input)
		assert.Error(t, err)
	})
}

func TestRunWritesStdout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = "ntriples"
	c := convert.New(cfg, nil)
	input := writeInput(t, `{"name":"A"}`)

	var out bytes.Buffer
	require.NoError(t, c.Run(context.Background(), input, "", &out))
	assert.Contains(t, out.String(), `"A"`)
}

func TestRunWritesFile(t *testing.T) {
	cfg := config.DefaultConfig()
	c := convert.New(cfg, nil)
	input := writeInput(t, `{"name":"A"}`)
	output := filepath.Join(t.TempDir(), "out.ttl")

	require.NoError(t, c.Run(context.Background(), input, output, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@prefix")
}

func TestRunOutputWriteFailure(t *testing.T) {
	cfg := config.DefaultConfig()
	c := convert.New(cfg, nil)
	input := writeInput(t, `{"name":"A"}`)

	err := c.Run(context.Background(), input, filepath.Join(t.TempDir(), "no", "such", "dir", "out.ttl"), nil)
	assert.ErrorIs(t, err, convert.ErrOutputWrite)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []struct{ name, content string }{
		{"a.json", `{"id":1}`},
		{"b.json", `{"id":2}`},
		{"nested/c.json", `{"id":3}`},
	} {
		path := filepath.Join(dir, f.name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f.content), 0644))
	}

	cfg := config.DefaultConfig()
	cfg.Format = "ntriples"
	c := convert.New(cfg, nil)

	outDir := filepath.Join(t.TempDir(), "out")
	count, err := c.Batch(context.Background(), convert.BatchOptions{
		Pattern:   filepath.Join(dir, "**", "*.json"),
		OutputDir: outDir,
		Workers:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for _, name := range []string{"a.nt", "b.nt", "c.nt"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected output file %s", name)
	}
}

func TestBatchNoMatches(t *testing.T) {
	c := convert.New(config.DefaultConfig(), nil)
	_, err := c.Batch(context.Background(), convert.BatchOptions{
		Pattern:   filepath.Join(t.TempDir(), "*.json"),
		OutputDir: t.TempDir(),
	})
	assert.ErrorIs(t, err, convert.ErrInputNotFound)
}

func TestBatchStopsOnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.json"), []byte(`{"a":1}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`not json`), 0644))

	c := convert.New(config.DefaultConfig(), nil)
	_, err := c.Batch(context.Background(), convert.BatchOptions{
		Pattern:   filepath.Join(dir, "*.json"),
		OutputDir: t.TempDir(),
		Workers:   1,
	})
	assert.ErrorIs(t, err, convert.ErrInvalidJSON)
}

func TestWatchRequiresOutputPath(t *testing.T) {
	c := convert.New(config.DefaultConfig(), nil)
	err := c.Watch(context.Background(), "input.json", "")
	assert.ErrorIs(t, err, convert.ErrOutputWrite)
}
