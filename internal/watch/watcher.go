// Package watch notices when another program changes the file bound to the document.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"notepad/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is an event on the watched file
type Change struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Removed reports whether the file was deleted or moved away.
func (c Change) Removed() bool {
	return c.Op.Has(fsnotify.Remove) || c.Op.Has(fsnotify.Rename)
}

// Watcher follows a single file through fsnotify. The parent directory is watched
// so editors that replace the file by renaming a temporary one are still seen.
type Watcher struct {
	// File currently followed, empty when idle
	target string

	// Channel delivering changes to the host
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	// Guards target and running
	mutex sync.RWMutex

	running bool
}

// New creates a watcher and starts its event loop. It follows nothing until Watch.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
		running:   true,
	}
	go w.loop()
	return w, nil
}

// Watch retargets the watcher at path. An empty path stops following any file.
func (w *Watcher) Watch(path string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return fmt.Errorf("watcher stopped")
	}

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", path, err)
		}
		path = abs
	}
	if path == w.target {
		return nil
	}

	if w.target != "" {
		oldDir := filepath.Dir(w.target)
		if path == "" || filepath.Dir(path) != oldDir {
			if err := w.fsWatcher.Remove(oldDir); err != nil {
				log.LogWithFields(log.F("directory", oldDir), log.F("error", err)).Debug("Error removing watch")
			}
		}
	}
	w.target = ""

	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.target = path
	log.LogWithFields(log.F("file", path)).Debug("Watching document")
	return nil
}

// Target returns the file being followed.
func (w *Watcher) Target() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.target
}

// Changes delivers events for the followed file. It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}

	w.mutex.RLock()
	defer w.mutex.RUnlock()

	if w.target == "" || filepath.Clean(event.Name) != w.target {
		return
	}

	change := Change{
		Path:      w.target,
		Op:        event.Op,
		Timestamp: time.Now(),
	}

	// Never block the event loop on a slow host
	select {
	case w.changes <- change:
	default:
		log.LogWithFields(log.F("file", event.Name)).Warn("Change channel is full, dropped event")
	}
}

// Stop halts the event loop and closes Changes.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
	w.target = ""

	// Closed under the lock so handle never sends on a closed channel
	close(w.changes)
}

// IsRunning returns whether the watcher is active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
