package notepad

import (
	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/locale"
)

// Host is the front-end the state drives. All calls happen on the host's UI goroutine.
type Host interface {
	// Quit terminates the application. It is the only terminal transition.
	Quit()
	// ApplySettings pushes committed settings and the reloaded catalog into the UI.
	ApplySettings(s config.Settings, c *locale.Catalog)
	// ShowError reports a recoverable failure to the user.
	ShowError(title string, err error)
	// Refresh redraws from the current state.
	Refresh()
}

// Dialogs is the file-selection service. Each call finishes by invoking done exactly
// once, either synchronously or later on the UI goroutine; ok is false on cancel.
type Dialogs interface {
	OpenFile(start string, filter *document.Filter, done func(path string, ok bool))
	SaveFile(start string, filter *document.Filter, done func(path string, ok bool))
	Folder(start string, done func(path string, ok bool))
}

type nopHost struct{}

func (nopHost) Quit() {}
func (nopHost) ApplySettings(config.Settings, *locale.Catalog) {}
func (nopHost) ShowError(string, error) {}
func (nopHost) Refresh() {}

type nopDialogs struct{}

func (nopDialogs) OpenFile(_ string, _ *document.Filter, done func(string, bool)) { done("", false) }
func (nopDialogs) SaveFile(_ string, _ *document.Filter, done func(string, bool)) { done("", false) }
func (nopDialogs) Folder(_ string, done func(string, bool)) { done("", false) }
