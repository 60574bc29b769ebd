package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch converts inputPath to outputPath once, then re-runs the
// conversion every time the input file is written. An output path is
// required: stdout would interleave successive documents. Conversion
// errors after the initial run are logged and do not stop the watch;
// the loop ends when ctx is canceled.
func (c *Converter) Watch(ctx context.Context, inputPath, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("%w: watch mode requires an output path", ErrOutputWrite)
	}

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInputNotFound, inputPath, err)
	}

	if err := c.Run(ctx, absInput, outputPath, nil); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors commonly replace files
	// by rename, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(absInput)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absInput), err)
	}

	c.logger.Info("Watching for changes", "input", absInput, "output", outputPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absInput {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			c.logger.Debug("Input changed", "op", event.Op.String())
			if err := c.Run(ctx, absInput, outputPath, nil); err != nil {
				c.logger.Error("Reconversion failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("Watcher error", "error", err)
		}
	}
}
