package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/jsonrdf/export"
)

// DefaultBatchWorkers bounds batch concurrency when BatchOptions.Workers
// is zero.
const DefaultBatchWorkers = 4

// BatchOptions configures a multi-file conversion.
type BatchOptions struct {
	// Pattern is a doublestar glob selecting input files, e.g.
	// "data/**/*.json".
	Pattern string

	// OutputDir receives one output file per input, named after the
	// input with the format's registry extension.
	OutputDir string

	// Workers bounds concurrent conversions; zero means
	// DefaultBatchWorkers.
	Workers int
}

// Batch converts every file matching the pattern. Each file is an
// independent unit of work; files are converted concurrently by a
// bounded worker pool. The first error cancels the remaining work and
// is returned. Returns the number of files converted.
func (c *Converter) Batch(ctx context.Context, opts BatchOptions) (int, error) {
	format, err := export.ParseFormat(c.cfg.Format)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, c.cfg.Format)
	}
	info, _ := export.GetFormatInfo(format)

	matches, err := doublestar.FilepathGlob(opts.Pattern)
	if err != nil {
		return 0, fmt.Errorf("invalid glob pattern %q: %w", opts.Pattern, err)
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: no files match %q", ErrInputNotFound, opts.Pattern)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrOutputWrite, opts.OutputDir, err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	if workers > len(matches) {
		workers = len(matches)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inputPath := range jobs {
				outputPath := filepath.Join(opts.OutputDir, outputName(inputPath, info.Extension))
				if err := c.Run(ctx, inputPath, outputPath, nil); err != nil {
					fail(fmt.Errorf("%s: %w", inputPath, err))
					continue
				}
				c.logger.Debug("Batch file converted", "input", inputPath, "output", outputPath)
				mu.Lock()
				done++
				mu.Unlock()
			}
		}()
	}

	for _, m := range matches {
		select {
		case <-ctx.Done():
		case jobs <- m:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return done, firstErr
	}
	return done, nil
}

// outputName swaps an input file's extension for the output format's.
func outputName(inputPath, extension string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + extension
}
