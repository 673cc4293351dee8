package notepad

import (
	"notepad/internal/config"
	"notepad/internal/errors"
	"notepad/internal/log"
	"notepad/pkg/types"
)

// OpenSettings moves from the editor to the settings screen with a fresh draft.
// It is ignored while the prompt is showing.
func (s *State) OpenSettings() {
	if s.screen != types.Editor || s.pending != types.NoAction {
		return
	}
	s.store.DiscardDraft()
	s.screen = types.Settings
	s.host.Refresh()
}

// Draft returns the settings being edited.
func (s *State) Draft() *config.Settings {
	return s.store.Draft()
}

// SaveSettings commits the draft, applies it and returns to the editor.
// An invalid draft keeps the settings screen open.
func (s *State) SaveSettings() {
	if s.commit() {
		s.screen = types.Editor
	}
	s.host.Refresh()
}

// ApplySettings commits and applies the draft but stays on the settings screen.
func (s *State) ApplySettings() {
	s.commit()
	s.host.Refresh()
}

// CancelSettings drops the draft and returns to the editor.
func (s *State) CancelSettings() {
	s.store.DiscardDraft()
	s.screen = types.Editor
	s.host.Refresh()
}

// PickDefaultPath lets the user choose the draft's default folder.
func (s *State) PickDefaultPath() {
	start := s.store.Draft().DefaultPath
	s.dialogs.Folder(start, func(path string, ok bool) {
		if ok && path != "" {
			s.store.Draft().DefaultPath = path
		}
		s.host.Refresh()
	})
}

// commit reports whether the active settings changed. A failed write still counts:
// the new settings stay in effect for this session.
func (s *State) commit() bool {
	err := s.store.CommitDraft()
	if err != nil && errors.IsInvalidConfig(err) {
		s.report("notepad.error.settings", err)
		return false
	}

	active := s.store.Active()
	s.catalog = loadCatalog(active.Language)
	s.host.ApplySettings(active, s.catalog)
	log.LogWithFields(
		log.F("language", string(active.Language)),
		log.F("dark_mode", active.DarkMode),
		log.F("font_size", active.FontSize),
	).Info("settings applied")

	if err != nil {
		s.report("notepad.error.settings", err)
	}
	return true
}
