// Package main provides the jsonrdf binary entry point. Jsonrdf
// converts JSON documents into RDF triples and serializes them as
// Turtle, N-Triples, JSON-LD, or RDF/XML.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/jsonrdf/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "jsonrdf"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// convertFlags are the conversion options shared by the convert, batch,
// and watch commands. Unset flags defer to the layered config files.
type convertFlags struct {
	configPath     string
	format         string
	output         string
	baseURI        string
	schemaURI      string
	pretty         bool
	generateSchema bool
	verbose        bool
	maxDepth       int
	logLevel       string
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "turtle", "Output format (turtle, ntriples, jsonld, rdfxml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&f.baseURI, "base-uri", "http://example.org/", "Base URI for resources")
	cmd.Flags().StringVar(&f.schemaURI, "schema-uri", "http://schema.org/", "Schema URI for class terms")
	cmd.Flags().BoolVar(&f.pretty, "pretty", true, "Pretty print output")
	cmd.Flags().BoolVar(&f.generateSchema, "schema", true, "Generate schema type triples")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Emit run statistics to stderr")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "Maximum input nesting depth (0 = config default)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// buildConfig layers config files under the flags the user actually
// set, then validates the result.
func (f *convertFlags) buildConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("base-uri") {
		cfg.BaseURI = f.baseURI
	}
	if flags.Changed("schema-uri") {
		cfg.SchemaURI = f.schemaURI
	}
	if flags.Changed("pretty") {
		cfg.PrettyPrint = f.pretty
	}
	if flags.Changed("schema") {
		cfg.GenerateSchema = f.generateSchema
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging configures the process-wide logger on stderr, keeping
// stdout clean for conversion output.
func (f *convertFlags) setupLogging() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(f.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
