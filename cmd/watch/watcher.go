package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"Intermediate": true,
	".idea":        true,
	".vscode":      true,
}

// watchedExtensions are the file kinds a change to which should trigger a
// re-scan.
var watchedExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".c":   true,
	".cpp": true,
	".inl": true,
}

func watchAndRescan(ctx context.Context, watchDirs []string, opts *watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, watchDirs); err != nil {
		return err
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				// A re-scan may pull in files the previous run never
				// touched; widen the watch set with their directories.
				newDirs, err := rescan(opts)
				if err != nil {
					log.Error("re-scan failed", "err", err)
					return
				}
				if err := addWatchDirs(watcher, newDirs); err != nil {
					log.Error("failed to extend watch set", "err", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "err", err)
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, dirs []string) error {
	for _, dir := range dirs {
		if skippedDirs[filepath.Base(dir)] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}
	return nil
}

// isRelevantChange accepts writes, creates, removes and renames of source
// files and build-descriptor files.
func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	base := filepath.Base(event.Name)
	if base == "CMakeLists.txt" || strings.Contains(base, "includes") {
		return true
	}
	return watchedExtensions[filepath.Ext(event.Name)]
}
