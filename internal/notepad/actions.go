package notepad

import (
	"notepad/internal/log"
	"notepad/pkg/types"
)

type saveResult int

const (
	saveWritten saveResult = iota
	saveCancelled
	saveFailed
)

// RequestNew asks to start an empty document. Ignored off the editor screen.
func (s *State) RequestNew() {
	if s.screen != types.Editor {
		return
	}
	s.request(types.NewFile)
}

// RequestOpen asks to pick and load a file. Ignored off the editor screen.
func (s *State) RequestOpen() {
	if s.screen != types.Editor {
		return
	}
	s.request(types.OpenFile)
}

// RequestClose asks to quit from the menu or a key binding.
// It always goes through the prompt when the document is dirty.
func (s *State) RequestClose() {
	s.request(types.CloseApp)
}

// request runs action now when nothing would be lost, otherwise defers it behind
// the prompt. A request while the prompt shows replaces the pending action.
func (s *State) request(action types.PendingAction) {
	if s.pending == types.NoAction && !s.doc.HasUnsavedChanges() {
		s.execute(action)
		return
	}

	log.LogWithFields(log.F("action", action.String()), log.F("replaces", s.pending.String())).
		Debug("action deferred behind unsaved-changes prompt")
	s.pending = action
	s.host.Refresh()
}

// HostCloseRequested handles the window's close button and reports whether the host
// may close right away. A dirty document vetoes the close and raises the prompt
// unless confirm-on-close is turned off.
func (s *State) HostCloseRequested() bool {
	if !s.doc.HasUnsavedChanges() || !s.store.Active().ConfirmOnClose {
		return true
	}
	s.pending = types.CloseApp
	s.host.Refresh()
	return false
}

// Resolve answers the prompt. It does nothing while Idle.
func (s *State) Resolve(choice types.Choice) {
	action := s.pending
	if action == types.NoAction {
		return
	}
	s.pending = types.NoAction
	log.LogWithFields(log.F("action", action.String()), log.F("choice", choice.String())).Debug("prompt resolved")

	switch choice {
	case types.Discard:
		s.execute(action)
	case types.Cancel:
		s.host.Refresh()
	case types.Save:
		s.save(func(res saveResult) {
			// Deliberately stricter than a discard: a failed write keeps the
			// buffer and drops the action.
			if res == saveFailed {
				return
			}
			// The buffer is emptied before the pending action runs, even for Open and Close.
			s.doc.SetContent("")
			s.execute(action)
		})
	}
}

func (s *State) execute(action types.PendingAction) {
	switch action {
	case types.NewFile:
		s.doc.Reset()
		s.host.Refresh()
	case types.OpenFile:
		// Any file may be opened; the filter is only a save hint
		s.dialogs.OpenFile(s.startDir(), nil, func(path string, ok bool) {
			if !ok {
				s.host.Refresh()
				return
			}
			_ = s.OpenPath(path)
		})
	case types.CloseApp:
		log.Info("closing notepad")
		s.host.Quit()
	default:
		s.host.Refresh()
	}
}

// SaveDocument writes the document to its file, asking for a path when unbound.
// Cancelling the dialog is a no-op; failures are reported and change nothing.
func (s *State) SaveDocument() {
	s.save(nil)
}

func (s *State) save(done func(saveResult)) {
	finish := func(res saveResult) {
		s.host.Refresh()
		if done != nil {
			done(res)
		}
	}

	if s.doc.HasPath() {
		finish(s.write(s.doc.Path()))
		return
	}

	s.dialogs.SaveFile(s.startDir(), s.filter, func(path string, ok bool) {
		if !ok || path == "" {
			finish(saveCancelled)
			return
		}
		finish(s.write(path))
	})
}

func (s *State) write(path string) saveResult {
	if err := s.doc.SaveAs(path); err != nil {
		s.report("notepad.error.save", err)
		return saveFailed
	}
	return saveWritten
}

// HandleShortcut runs a primary-modifier shortcut and reports whether it was consumed.
// Shortcuts only act on the editor screen; New, Open and Settings also need the prompt hidden.
func (s *State) HandleShortcut(sc types.Shortcut) bool {
	if s.screen != types.Editor {
		return false
	}
	idle := s.pending == types.NoAction

	switch sc {
	case types.ShortcutNew:
		if idle {
			s.RequestNew()
			return true
		}
	case types.ShortcutOpen:
		if idle {
			s.RequestOpen()
			return true
		}
	case types.ShortcutSave:
		s.SaveDocument()
		return true
	case types.ShortcutSettings:
		if idle {
			s.OpenSettings()
			return true
		}
	}
	return false
}
