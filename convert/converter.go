// Package convert orchestrates the conversion pipeline: read a JSON
// document, build its RDF graph, serialize, and write the result.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/jsonrdf/config"
	"github.com/c360studio/jsonrdf/export"
	"github.com/c360studio/jsonrdf/graph"
	"github.com/c360studio/jsonrdf/jsonval"
)

// Converter runs one-shot conversions with a fixed configuration. It is
// stateless across runs: every conversion is an independent,
// side-effect-free unit of work, safe to execute concurrently.
type Converter struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a converter. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{cfg: cfg, logger: logger}
}

// Result carries the serialized output and run statistics.
type Result struct {
	Output string
	Stats  Stats
}

// Stats summarizes one conversion for the diagnostic stream.
type Stats struct {
	RunID     string
	InputPath string
	Format    export.Format
	Triples   int
	Resources int
	Duration  time.Duration
}

// ConvertFile converts one JSON file and returns the serialized output
// with statistics. The format selector is validated before any file I/O
// so unsupported formats fail fast.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	format, err := export.ParseFormat(c.cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.cfg.Format)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, inputPath, err)
	}

	root, err := jsonval.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, inputPath, err)
	}

	var policy graph.SchemaPolicy
	if c.cfg.GenerateSchema {
		policy = graph.ThingPolicy{SchemaURI: c.cfg.SchemaURI}
	}

	ts, err := graph.Build(root, graph.Options{
		BaseURI:  c.cfg.BaseURI,
		Schema:   policy,
		MaxDepth: c.cfg.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("build graph for %s: %w", inputPath, err)
	}

	serializer, err := export.New(format, export.Options{
		BaseURI:     c.cfg.BaseURI,
		SchemaURI:   c.cfg.SchemaURI,
		PrettyPrint: c.cfg.PrettyPrint,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	output, err := serializer.Serialize(ts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	stats := Stats{
		RunID:     uuid.New().String(),
		InputPath: inputPath,
		Format:    format,
		Triples:   ts.Len(),
		Resources: ts.ResourceCount(),
		Duration:  time.Since(start),
	}

	if c.cfg.Verbose {
		c.logger.Info("Conversion complete",
			"run_id", stats.RunID,
			"input", stats.InputPath,
			"format", stats.Format,
			"triples", stats.Triples,
			"resources", stats.Resources,
			"duration", stats.Duration)
	}

	return &Result{Output: output, Stats: stats}, nil
}

// Run converts inputPath and writes the result to outputPath, or to
// stdout when outputPath is empty.
func (c *Converter) Run(ctx context.Context, inputPath, outputPath string, stdout io.Writer) error {
	result, err := c.ConvertFile(ctx, inputPath)
	if err != nil {
		return err
	}
	return c.write(result.Output, outputPath, stdout)
}

func (c *Converter) write(output, outputPath string, stdout io.Writer) error {
	if outputPath == "" {
		if _, err := io.WriteString(stdout, output); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrOutputWrite, err)
		}
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outputPath, err)
	}
	c.logger.Debug("Output written", "path", outputPath)
	return nil
}
