package tui

import (
	"notepad/internal/log"
	"notepad/internal/tui/messages"
	"notepad/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForChange blocks on the watcher in a command and returns the next change as a message.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ChangeMsg{Change: change}
	}
}

func (m *Model) onDiskChange(change watch.Change) {
	if m.watcher == nil || change.Path != m.watcher.Target() {
		return
	}
	changed, err := m.state.Document().ChangedOnDisk()
	if err != nil {
		log.LogWithError(err).Warn("Could not compare document with disk")
		return
	}
	m.external = changed
}

// followDocument retargets the watcher when the bound path changes.
func (m *Model) followDocument(path string) {
	if path == m.watched {
		if m.external {
			if changed, err := m.state.Document().ChangedOnDisk(); err == nil {
				m.external = changed
			}
		}
		return
	}

	m.watched = path
	m.external = false
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(path); err != nil {
		log.LogWithFields(log.F("file", path), log.F("error", err)).Warn("Cannot watch document")
	}
}
