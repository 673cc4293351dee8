package gui

import (
	"notepad/internal/log"
	"notepad/internal/watch"

	"fyne.io/fyne/v2"
)

// forwardChanges runs on its own goroutine and hands watcher events to the UI thread.
func (a *App) forwardChanges() {
	for change := range a.watcher.Changes() {
		change := change
		fyne.Do(func() {
			a.onDiskChange(change)
		})
	}
}

func (a *App) onDiskChange(change watch.Change) {
	doc := a.state.Document()
	if a.quitting || a.watcher == nil || change.Path != a.watcher.Target() {
		return
	}

	changed, err := doc.ChangedOnDisk()
	if err != nil {
		log.LogWithError(err).Warn("Could not compare document with disk")
		return
	}
	if changed != a.external {
		a.external = changed
		log.LogWithFields(log.F("file", change.Path), log.F("changed", changed)).Info("Document changed on disk")
		a.updateStatus()
	}
}

// followDocument retargets the watcher when the bound path changes.
func (a *App) followDocument(path string) {
	if path == a.watched {
		if a.external {
			// Our own save or reload clears the notice
			if changed, err := a.state.Document().ChangedOnDisk(); err == nil {
				a.external = changed
			}
		}
		return
	}

	a.watched = path
	a.external = false
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		log.LogWithFields(log.F("file", path), log.F("error", err)).Warn("Cannot watch document")
	}
}

func (a *App) stopWatcher() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}
