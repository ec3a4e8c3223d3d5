package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/quiz-reel/internal/logger"
)

const failedSuffix = ".failed"

type implWatcher struct {
	spoolDir    string
	archiveDir  string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// Start handles files already in the spool, then every new *.json file, one at a time.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Spool watcher started. Monitoring: %s", w.spoolDir)
	w.logger.Info(ctx, "Archiving handled requests to: %s", w.archiveDir)

	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Spool watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only CREATE events; renames into the spool also arrive as CREATE
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isJSON(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-request file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New render request detected: %s", event.Name)

			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			w.handle(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.spoolDir)
	if err != nil {
		return fmt.Errorf("read spool dir: %w", err)
	}

	var pending []string
	for _, e := range entries {
		if !e.IsDir() && isJSON(e.Name()) {
			pending = append(pending, filepath.Join(w.spoolDir, e.Name()))
		}
	}
	sort.Strings(pending)

	if len(pending) > 0 {
		w.logger.Info(ctx, "Found %d request(s) already in spool", len(pending))
	}
	for _, path := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.handle(ctx, path)
	}
	return nil
}

// handle runs the handler and archives the file. A file that disappeared
// before it could be handled is skipped.
func (w *implWatcher) handle(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		w.logger.Warn(ctx, "Request file vanished before handling: %s", path)
		return
	}

	failed := false
	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		failed = true
	}

	dest := archivePath(w.archiveDir, path, failed)
	if err := os.Rename(path, dest); err != nil {
		w.logger.Error(ctx, "Failed to archive %s: %v", path, err)
		return
	}
	w.logger.Info(ctx, "Archived request to %s", dest)
}

// archivePath names the archived copy of a request file.
func archivePath(archiveDir, path string, failed bool) string {
	name := filepath.Base(path)
	if failed {
		name += failedSuffix
	}
	return filepath.Join(archiveDir, name)
}

// isJSON reports whether path looks like a spooled render request
func isJSON(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.ToLower(filepath.Ext(base)) == ".json"
}
