package script

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls run once and then again every time the file at path is
// written or replaced, until ctx is cancelled. The file's directory is
// watched rather than the file itself so that editors that save by
// renaming a new file into place are noticed.
//
// An error from run is logged and does not stop the watch.
func Watch(ctx context.Context, path string, logger *slog.Logger, run func() error) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	call := func() {
		if err := run(); err != nil {
			logger.Error("replay failed", "path", path, "err", err)
		}
	}
	call()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("scenario changed", "path", path, "op", ev.Op)
			call()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}
