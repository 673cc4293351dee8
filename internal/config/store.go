package config

import (
	"notepad/internal/errors"
	"notepad/internal/log"
)

// Store holds the applied settings and the copy being edited on the settings screen.
type Store struct {
	path   string
	active Settings
	draft  Settings
}

// NewStore loads the settings at path (the default location when empty).
// The returned store is always usable; a non-nil error describes why defaults were used.
func NewStore(path string) (*Store, error) {
	var loadErr error
	if path == "" {
		path, loadErr = DefaultPath()
	}

	active := Defaults()
	if loadErr == nil {
		active, loadErr = LoadSettingsFile(path)
	}
	if loadErr != nil {
		log.LogWithError(loadErr).Warn("settings file not fully applied, defaults used where needed")
	}

	return &Store{path: path, active: active, draft: active}, loadErr
}

// NewStoreWith creates a store around s without touching disk.
func NewStoreWith(path string, s Settings) *Store {
	return &Store{path: path, active: s, draft: s}
}

// Path returns where the store persists.
func (s *Store) Path() string {
	return s.path
}

// Active returns the settings in effect.
func (s *Store) Active() Settings {
	return s.active
}

// Draft returns the editable copy.
func (s *Store) Draft() *Settings {
	return &s.draft
}

// DraftChanged reports whether the draft differs from the active settings.
func (s *Store) DraftChanged() bool {
	return s.draft != s.active
}

// CommitDraft makes the draft active and persists it.
// The in-memory active settings change even when writing fails.
func (s *Store) CommitDraft() error {
	if err := s.draft.Validate(); err != nil {
		return err
	}
	s.active = s.draft
	return s.persist()
}

// DiscardDraft reverts the draft to the active settings.
func (s *Store) DiscardDraft() {
	s.draft = s.active
}

// Reset restores defaults in both copies and persists them.
func (s *Store) Reset() error {
	s.active = Defaults()
	s.draft = s.active
	return s.persist()
}

func (s *Store) persist() error {
	if s.path == "" {
		return errors.NewConfigError("no settings location", "", errors.ConfigWriteFailed, nil)
	}
	if err := SaveSettings(s.active, s.path); err != nil {
		log.LogWithError(err).Error("settings not persisted")
		return err
	}
	log.LogWithFields(log.F("path", s.path)).Info("settings saved")
	return nil
}
