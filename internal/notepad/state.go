// Package notepad is the application state shared by the desktop and terminal hosts:
// the document, the settings store, the current screen and the unsaved-changes prompt.
package notepad

import (
	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/locale"
	"notepad/internal/log"
	"notepad/pkg/types"
)

// State is constructed once at startup and mutated only through its methods.
// It is not safe for concurrent use; hosts call it from their UI goroutine.
type State struct {
	doc     *document.Document
	store   *config.Store
	catalog *locale.Catalog
	filter  *document.Filter

	screen  types.Screen
	pending types.PendingAction

	host    Host
	dialogs Dialogs
}

// Option configures a State.
type Option func(*State)

// WithFilter sets the file filter the save dialog offers as a hint.
func WithFilter(f *document.Filter) Option {
	return func(s *State) {
		s.filter = f
	}
}

// WithDocument starts from an existing document.
func WithDocument(d *document.Document) Option {
	return func(s *State) {
		s.doc = d
	}
}

// New builds the state around store and loads the catalog for its active language.
func New(store *config.Store, opts ...Option) *State {
	s := &State{
		doc:     document.New(),
		store:   store,
		filter:  document.DefaultFilter(),
		screen:  types.Editor,
		pending: types.NoAction,
		host:    nopHost{},
		dialogs: nopDialogs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.catalog = loadCatalog(store.Active().Language)
	return s
}

// Attach connects the host and its dialog service. Either may be nil.
func (s *State) Attach(host Host, dialogs Dialogs) {
	if host == nil {
		host = nopHost{}
	}
	if dialogs == nil {
		dialogs = nopDialogs{}
	}
	s.host = host
	s.dialogs = dialogs
}

func loadCatalog(lang config.Language) *locale.Catalog {
	c, err := locale.Load(lang)
	if err != nil {
		log.LogWithError(err).Warn("falling back to English strings")
	}
	return c
}

// Document returns the edited document.
func (s *State) Document() *document.Document {
	return s.doc
}

// Store returns the settings store.
func (s *State) Store() *config.Store {
	return s.store
}

// Settings returns the active settings.
func (s *State) Settings() config.Settings {
	return s.store.Active()
}

// Catalog returns the strings for the active language.
func (s *State) Catalog() *locale.Catalog {
	return s.catalog
}

// Text looks up key in the active catalog.
func (s *State) Text(key string) string {
	return s.catalog.Text(key)
}

// Textf formats the string for key in the active catalog.
func (s *State) Textf(key string, args ...interface{}) string {
	return s.catalog.Textf(key, args...)
}

// Filter returns the dialog file filter.
func (s *State) Filter() *document.Filter {
	return s.filter
}

// Screen returns the current screen.
func (s *State) Screen() types.Screen {
	return s.screen
}

// PendingAction returns the action deferred behind the prompt.
func (s *State) PendingAction() types.PendingAction {
	return s.pending
}

// PromptState reports whether the unsaved-changes prompt is showing.
func (s *State) PromptState() types.PromptState {
	if s.pending != types.NoAction {
		return types.Confirming
	}
	return types.Idle
}

// Title is the window title: file name, dirty marker and application name.
func (s *State) Title() string {
	name := s.doc.Title(s.Text("notepad.untitled"))
	if s.doc.HasUnsavedChanges() {
		name = "*" + name
	}
	return name + " - " + s.Text("notepad.title")
}

// OpenPath loads path into the document, bypassing the unsaved-changes policy.
// Used for the file named on the command line and after the open dialog.
func (s *State) OpenPath(path string) error {
	if err := s.doc.Open(path); err != nil {
		s.report("notepad.error.open", err)
		return err
	}
	s.host.Refresh()
	return nil
}

func (s *State) report(titleKey string, err error) {
	log.LogWithError(err).With(log.F("operation", titleKey)).Error("operation failed")
	s.host.ShowError(s.Text(titleKey), err)
	s.host.Refresh()
}

func (s *State) startDir() string {
	return s.store.Active().DefaultPath
}
