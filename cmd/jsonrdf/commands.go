package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/jsonrdf/convert"
	"github.com/c360studio/jsonrdf/export"
)

func rootCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   appName + " <input.json>",
		Short: "Convert JSON documents to RDF triples",
		Long: `jsonrdf converts a JSON document into an RDF graph and serializes it
as Turtle, N-Triples, JSON-LD, or RDF/XML.

Every JSON object becomes a resource with a path-derived identifier,
scalar members become typed literals, and nested objects are linked by
resource-valued triples. Conversion is deterministic: the same input
always produces the same output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.setupLogging()
			cfg, err := flags.buildConfig(cmd, logger)
			if err != nil {
				return err
			}
			return convert.New(cfg, logger).Run(cmd.Context(), args[0], flags.output, os.Stdout)
		},
	}
	flags.register(cmd)

	cmd.AddCommand(batchCmd())
	cmd.AddCommand(watchCmd())
	cmd.AddCommand(formatsCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func batchCmd() *cobra.Command {
	flags := &convertFlags{}
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <glob>",
		Short: "Convert every JSON file matching a glob pattern",
		Long: `Batch converts all files matching a doublestar glob pattern, writing
one output file per input into the output directory. Files are
converted concurrently; the first failure stops the batch.

Example:
  jsonrdf batch 'data/**/*.json' --out-dir rdf/ -f ntriples`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.setupLogging()
			cfg, err := flags.buildConfig(cmd, logger)
			if err != nil {
				return err
			}
			count, err := convert.New(cfg, logger).Batch(cmd.Context(), convert.BatchOptions{
				Pattern:   args[0],
				OutputDir: outDir,
				Workers:   workers,
			})
			if err != nil {
				return err
			}
			logger.Info("Batch complete", "files", count, "out_dir", outDir)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for output files")
	cmd.Flags().IntVar(&workers, "workers", convert.DefaultBatchWorkers, "Concurrent conversions")

	return cmd
}

func watchCmd() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "watch <input.json>",
		Short: "Reconvert a JSON file whenever it changes",
		Long: `Watch converts the input once, then re-runs the conversion every time
the file is written. Requires --output; stop with Ctrl-C.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := flags.setupLogging()
			cfg, err := flags.buildConfig(cmd, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return convert.New(cfg, logger).Watch(ctx, args[0], flags.output)
		},
	}
	flags.register(cmd)

	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(export.FormatRegistry))
			for format := range export.FormatRegistry {
				names = append(names, string(format))
			}
			sort.Strings(names)

			for _, name := range names {
				info := export.FormatRegistry[export.Format(name)]
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-28s %s\n", name, info.MIMEType, info.Extension)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (built %s)\n", appName, Version, BuildTime)
		},
	}
}
