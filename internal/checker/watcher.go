package checker

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ResultCallback is called with the outcome of each watcher-driven check.
type ResultCallback func(Result)

// Watch starts an fsnotify watcher on the fixture root and rechecks
// documents as they change, until ctx is cancelled. It calls cb (if
// non-nil) with each fresh result.
//
// New directories created at runtime are automatically added to the
// watch list. Writes are debounced per path so editors that write in
// several bursts produce one recheck.
func Watch(ctx context.Context, root string, logger *slog.Logger, cb ResultCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	pending := make(map[string]struct{})
	var flushTimer *time.Timer
	var flushCh <-chan time.Time

	scheduleFlush := func() {
		if flushTimer == nil {
			flushTimer = time.NewTimer(200 * time.Millisecond)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			for path := range pending {
				delete(pending, path)
				if _, statErr := os.Stat(path); statErr != nil {
					// Deleted between the event and the flush.
					continue
				}
				res := CheckFile(root, path)
				if res.Passed {
					logger.Debug("watcher: passed", slog.String("path", res.Path), slog.String("shape", res.Shape))
				} else {
					logger.Warn("watcher: failed", slog.String("path", res.Path), slog.String("detail", res.Detail))
				}
				if cb != nil {
					cb(res)
				}
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			absPath := ev.Name

			// New directories: add to watcher and check their contents.
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					}
					queueDir(absPath, pending)
					scheduleFlush()
					continue
				}
			}

			if !strings.HasSuffix(absPath, ".json") {
				continue
			}

			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				pending[absPath] = struct{}{}
				scheduleFlush()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// queueDir queues every .json fixture under dir for checking.
func queueDir(dir string, pending map[string]struct{}) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		pending[path] = struct{}{}
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
