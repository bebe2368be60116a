// Package watcher reloads a graph file when it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a change is reported
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a file for changes
type Watcher struct {
	path     string
	onChange func(path string)
	debounce time.Duration
}

// New creates a new file watcher. onChange runs on the watching goroutine
// once writes to the file have been quiet for the debounce period.
func New(path string, onChange func(path string)) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching the file for changes.
// It blocks until the context is cancelled or an error occurs.
func (w *Watcher) Watch(ctx context.Context) error {
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory so files replaced by editors are still seen
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	log.Printf("Watching %s for changes", absPath)

	// Reset never delivers a stale tick since Go 1.23
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event, absPath) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			log.Printf("File changed: %s", w.path)
			w.onChange(w.path)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event, absPath string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != absPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
