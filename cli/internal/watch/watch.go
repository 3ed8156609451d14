// Package watch provides file watching for schema changes.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 500 * time.Millisecond

// Watcher re-runs a callback whenever the watched schema file changes.
// Editors replace files on save, so the watch is registered on the containing
// directory and events are filtered back to the target path.
type Watcher struct {
	file     string
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan bool
}

// NewWatcher creates a watcher for the given file.
func NewWatcher(file string, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		file:     absPath,
		callback: callback,
		watcher:  watcher,
		done:     make(chan bool),
	}, nil
}

// Start begins watching. When runNow is set the callback runs once before any
// file event arrives.
func (w *Watcher) Start(runNow bool) error {
	if runNow {
		if err := w.callback(); err != nil {
			return fmt.Errorf("initial run failed: %w", err)
		}
	}

	go func() {
		debounceTimer := time.NewTimer(debounceInterval)
		debounceTimer.Stop()
		var debounceCh <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					eventPath, err := filepath.Abs(event.Name)
					if err == nil && eventPath == w.file {
						// Debounce: reset timer on each event
						debounceTimer.Reset(debounceInterval)
						debounceCh = debounceTimer.C
					}
				}

			case <-debounceCh:
				if err := w.callback(); err != nil {
					fmt.Fprintf(os.Stderr, "Watch callback error: %v\n", err)
				}
				debounceCh = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops watching the file
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
