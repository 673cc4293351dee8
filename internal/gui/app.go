package gui

import (
	"fmt"

	"notepad/internal/config"
	"notepad/internal/locale"
	"notepad/internal/log"
	"notepad/internal/notepad"
	"notepad/internal/watch"
	"notepad/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// AppID is the unique id used for Fyne preferences storage
const AppID = "io.github.notepad"

// App is the desktop host
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	state      *notepad.State
	dialogs    notepad.Dialogs
	watcher    *watch.Watcher
	noWatch    bool

	editor      *editorEntry
	editorView  fyne.CanvasObject
	pathLabel   *widget.Label // Bound file or "untitled"
	statusLabel *widget.Label // Saved/modified, change summary, external edits

	settings *settingsForm // nil until the settings screen is first shown
	prompt   *unsavedPrompt

	shown    types.Screen
	watched  string // Path the watcher currently follows
	external bool   // The bound file changed on disk since it was loaded or saved
	quitting bool
}

// Option configures an App
type Option func(*App)

// WithDialogs replaces the native file dialogs.
func WithDialogs(d notepad.Dialogs) Option {
	return func(a *App) {
		a.dialogs = d
	}
}

// WithoutWatcher disables external change detection.
func WithoutWatcher() Option {
	return func(a *App) {
		a.noWatch = true
	}
}

// NewApp creates the main window around state. A nil fyneApp creates the real application.
func NewApp(fyneApp fyne.App, state *notepad.State, opts ...Option) *App {
	if fyneApp == nil {
		// Create app with a unique ID for preferences storage
		fyneApp = app.NewWithID(AppID)
	}

	a := &App{
		fyneApp: fyneApp,
		state:   state,
		shown:   types.Editor,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.mainWindow = a.fyneApp.NewWindow(state.Title())
	a.mainWindow.Resize(fyne.NewSize(1280, 720))

	if a.dialogs == nil {
		a.dialogs = &fileDialogs{window: a.mainWindow}
	}
	state.Attach(a, a.dialogs)

	if !a.noWatch {
		w, err := watch.New()
		if err != nil {
			log.Warnf("External change detection disabled: %v", err)
		} else {
			a.watcher = w
			go a.forwardChanges()
		}
	}

	a.setupMainWindow()
	a.ApplySettings(state.Settings(), state.Catalog())
	a.Refresh()

	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the window and blocks until the application quits
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
	a.stopWatcher()
}

func (a *App) setupMainWindow() {
	a.editor = newEditorEntry(a.handleShortcut)
	a.editor.OnChanged = func(text string) {
		a.state.Document().SetContent(text)
		a.updateStatus()
	}

	a.pathLabel = widget.NewLabel("")
	a.pathLabel.Truncation = fyne.TextTruncateEllipsis
	a.statusLabel = widget.NewLabel("")

	a.editorView = container.NewBorder(
		nil,
		container.NewBorder(nil, nil, nil, a.statusLabel, a.pathLabel),
		nil,
		nil,
		a.editor,
	)

	for _, sc := range shortcuts() {
		sc := sc
		a.mainWindow.Canvas().AddShortcut(sc, func(fyne.Shortcut) {
			a.handleShortcut(sc)
		})
	}

	a.mainWindow.SetCloseIntercept(a.closeRequested)
	a.mainWindow.SetContent(a.editorView)
	a.mainWindow.Canvas().Focus(a.editor)
}

func (a *App) buildMenu() *fyne.MainMenu {
	text := a.state.Text

	quit := fyne.NewMenuItem(text("notepad.menu.file.quit"), a.state.RequestClose)
	quit.IsQuit = true

	file := fyne.NewMenu(text("notepad.menu.file.title"),
		fyne.NewMenuItem(text("notepad.menu.file.new"), a.state.RequestNew),
		fyne.NewMenuItem(text("notepad.menu.file.open"), a.state.RequestOpen),
		fyne.NewMenuItem(text("notepad.menu.file.save"), a.state.SaveDocument),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text("notepad.menu.file.settings"), a.state.OpenSettings),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	return fyne.NewMainMenu(file)
}

func (a *App) handleShortcut(sc *desktop.CustomShortcut) bool {
	action, ok := shortcutAction(sc)
	if !ok {
		return false
	}
	return a.state.HandleShortcut(action)
}

func (a *App) closeRequested() {
	if a.state.HostCloseRequested() {
		a.Quit()
	}
}

// Quit stops the watcher and ends the Fyne event loop
func (a *App) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	log.Info("Quitting notepad")
	a.stopWatcher()
	a.fyneApp.Quit()
}

// ApplySettings pushes theme, font and language into the window
func (a *App) ApplySettings(s config.Settings, c *locale.Catalog) {
	a.fyneApp.Settings().SetTheme(newNotepadTheme(s))
	a.editor.TextStyle = fyne.TextStyle{Monospace: s.FontName == config.FontMonospace}
	a.editor.Refresh()
	a.mainWindow.SetMainMenu(a.buildMenu())

	// Rebuilt on next show so labels use the new language
	a.settings = nil
	log.LogWithFields(log.F("language", string(c.Language())), log.F("dark_mode", s.DarkMode)).Debug("Applied settings to window")
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.mainWindow)
	log.LogWithError(err).With(log.F("title", title)).Debug("Shown error dialog")
}

// Refresh synchronises every widget with the state
func (a *App) Refresh() {
	if a.quitting {
		return
	}

	doc := a.state.Document()
	if a.editor.Text != doc.Content() {
		a.editor.SetText(doc.Content())
	}

	a.showScreen(a.state.Screen())

	if a.state.PromptState() == types.Confirming {
		a.showPrompt()
	} else {
		a.hidePrompt()
	}

	a.followDocument(doc.Path())
	a.updateStatus()
}

func (a *App) showScreen(screen types.Screen) {
	switch screen {
	case types.Settings:
		if a.shown != types.Settings || a.settings == nil {
			a.settings = newSettingsForm(a.state)
			a.mainWindow.SetContent(a.settings.content)
		}
		a.settings.sync()
	default:
		if a.shown != types.Editor {
			a.mainWindow.SetContent(a.editorView)
			a.mainWindow.Canvas().Focus(a.editor)
		}
	}
	a.shown = screen
}

func (a *App) updateStatus() {
	doc := a.state.Document()
	a.mainWindow.SetTitle(a.state.Title())

	if doc.HasPath() {
		a.pathLabel.SetText(doc.Path())
	} else {
		a.pathLabel.SetText(a.state.Text("notepad.untitled"))
	}

	status := a.state.Text("notepad.status.saved")
	if doc.HasUnsavedChanges() {
		changes := doc.Changes()
		status = a.state.Text("notepad.status.modified") + "  " +
			a.state.Textf("notepad.status.changes", changes.Inserted, changes.Deleted)
	}
	if a.external {
		status = a.state.Text("notepad.status.external") + "  |  " + status
	}
	a.statusLabel.SetText(status)
}
