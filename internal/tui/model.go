// Package tui is the terminal host: the notepad state driven by a bubbletea program.
package tui

import (
	"os"
	"strings"

	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/locale"
	"notepad/internal/log"
	"notepad/internal/notepad"
	"notepad/internal/tui/components"
	"notepad/internal/tui/messages"
	"notepad/internal/tui/styles"
	"notepad/internal/tui/views"
	"notepad/internal/watch"
	"notepad/pkg/types"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	// Core state
	state  *notepad.State
	keys   types.KeyMap
	styles styles.Styles

	// Widgets
	editor     textarea.Model
	pathPrompt *components.PathPrompt
	status     *components.StatusBar
	help       help.Model

	// Settings screen cursor
	cursor settingField

	// External change detection
	watcher  *watch.Watcher
	watched  string
	external bool

	// System clipboard writer
	copyText func(string) error

	width    int
	height   int
	title    string
	quitting bool

	// Commands produced by host callbacks, returned from the current Update
	cmds []tea.Cmd
}

// Option configures a Model
type Option func(*Model)

// WithWatcher enables external change detection through w.
func WithWatcher(w *watch.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// New builds the terminal host around state and attaches itself as host and dialogs.
func New(state *notepad.State, opts ...Option) *Model {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.Focus()

	m := &Model{
		state:      state,
		keys:       types.DefaultKeyMap(),
		editor:     ta,
		pathPrompt: components.NewPathPrompt(),
		status:     components.NewStatusBar(),
		help:       help.New(),
		copyText:   clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	state.Attach(m, m)
	m.ApplySettings(state.Settings(), state.Catalog())
	m.sync()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.SetWindowTitle(m.state.Title()),
		m.waitForChange(),
	)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case messages.ChangeMsg:
		m.onDiskChange(msg.Change)
		cmds = append(cmds, m.waitForChange())
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))
	default:
		// Cursor blink and other component ticks
		if m.pathPrompt.Active() {
			cmds = append(cmds, m.pathPrompt.Update(msg))
		} else {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.cmds...)
	m.cmds = nil

	if m.quitting {
		return m, tea.Quit
	}
	if title := m.state.Title(); title != m.title {
		m.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderMainView(m)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	m.status.Clear()

	// The terminal's interrupt behaves like the window close button
	if key.Matches(msg, m.keys.Close) {
		m.closeRequested()
		return nil
	}

	if m.pathPrompt.Active() {
		return m.pathPrompt.Update(msg)
	}

	if m.state.PromptState() == types.Confirming {
		return m.handleConfirmKeys(msg)
	}

	if m.state.Screen() == types.Settings {
		return m.handleSettingsKeys(msg)
	}
	return m.handleEditorKeys(msg)
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.New):
		m.state.HandleShortcut(types.ShortcutNew)
	case key.Matches(msg, m.keys.Open):
		m.state.HandleShortcut(types.ShortcutOpen)
	case key.Matches(msg, m.keys.Save):
		m.state.HandleShortcut(types.ShortcutSave)
	case key.Matches(msg, m.keys.Settings):
		m.state.HandleShortcut(types.ShortcutSettings)
	case key.Matches(msg, m.keys.Quit):
		m.state.RequestClose()
	case key.Matches(msg, m.keys.CopyAll):
		m.copyAll()
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.state.Document().SetContent(m.editor.Value())
		return cmd
	}
	return nil
}

// copyAll puts the whole buffer on the system clipboard
func (m *Model) copyAll() {
	if err := m.copyText(m.state.Document().Content()); err != nil {
		log.LogWithError(err).Warn("Clipboard unavailable")
		m.status.SetError(m.state.Text("notepad.error.clipboard") + ": " + err.Error())
		return
	}
	m.status.SetText(m.state.Text("notepad.status.copied"))
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Discard):
		m.state.Resolve(types.Discard)
	case key.Matches(msg, m.keys.Cancel):
		m.state.Resolve(types.Cancel)
	case key.Matches(msg, m.keys.Confirm):
		m.state.Resolve(types.Save)
	case key.Matches(msg, m.keys.Quit):
		m.state.RequestClose()
	}
	return nil
}

func (m *Model) closeRequested() {
	if m.state.HostCloseRequested() {
		m.Quit()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// Header, borders, status and help lines
	m.editor.SetWidth(max(width-4, 10))
	m.editor.SetHeight(max(height-7, 3))
}

// sync copies the document into the editor and follows its file.
func (m *Model) sync() {
	doc := m.state.Document()
	if m.editor.Value() != doc.Content() {
		m.editor.SetValue(doc.Content())
	}
	m.followDocument(doc.Path())
}

// Quit implements notepad.Host
func (m *Model) Quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	log.Info("Quitting notepad")
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// ApplySettings implements notepad.Host
func (m *Model) ApplySettings(s config.Settings, c *locale.Catalog) {
	m.styles = styles.For(s.DarkMode)
	m.help.Styles.ShortKey = m.styles.Help.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	log.LogWithFields(log.F("language", string(c.Language())), log.F("dark_mode", s.DarkMode)).Debug("Applied settings to terminal")
}

// ShowError implements notepad.Host
func (m *Model) ShowError(title string, err error) {
	if err == nil {
		return
	}
	m.status.SetError(title + ": " + err.Error())
}

// Refresh implements notepad.Host
func (m *Model) Refresh() {
	m.sync()
}

// OpenFile implements notepad.Dialogs
func (m *Model) OpenFile(start string, filter *document.Filter, done func(string, bool)) {
	m.openPathPrompt("notepad.dialog.open", start, components.Suggestions(start, filter, false), done)
}

// SaveFile implements notepad.Dialogs
func (m *Model) SaveFile(start string, filter *document.Filter, done func(string, bool)) {
	m.openPathPrompt("notepad.dialog.save", start, components.Suggestions(start, filter, false), done)
}

// Folder implements notepad.Dialogs
func (m *Model) Folder(start string, done func(string, bool)) {
	m.openPathPrompt("notepad.dialog.folder", start, components.Suggestions(start, nil, true), done)
}

func (m *Model) openPathPrompt(titleKey, start string, suggestions []string, done func(string, bool)) {
	value := start
	if value != "" && !strings.HasSuffix(value, string(os.PathSeparator)) {
		value += string(os.PathSeparator)
	}
	m.cmds = append(m.cmds, m.pathPrompt.Open(m.state.Text(titleKey), value, suggestions, done))
}

// Screen, Header and the other accessors below implement views.ModelReader

func (m *Model) Styles() styles.Styles { return m.styles }
func (m *Model) Screen() types.Screen  { return m.state.Screen() }
func (m *Model) Confirming() bool      { return m.state.PromptState() == types.Confirming }
func (m *Model) Modified() bool        { return m.state.Document().HasUnsavedChanges() }
func (m *Model) EditorView() string    { return m.editor.View() }
func (m *Model) Width() int            { return m.width }
func (m *Model) Height() int           { return m.height }

func (m *Model) Header() string {
	doc := m.state.Document()
	return m.state.Text("notepad.title") + " - " + doc.Title(m.state.Text("notepad.untitled"))
}

func (m *Model) StatusLine() (string, bool) {
	if text, isError := m.status.Message(); text != "" {
		return text, isError
	}

	doc := m.state.Document()
	var parts []string
	if m.external {
		parts = append(parts, m.state.Text("notepad.status.external"))
	}
	if doc.HasUnsavedChanges() {
		c := doc.Changes()
		parts = append(parts, m.state.Text("notepad.status.modified"), m.state.Textf("notepad.status.changes", c.Inserted, c.Deleted))
	} else {
		parts = append(parts, m.state.Text("notepad.status.saved"))
	}
	if doc.HasPath() {
		parts = append(parts, doc.Path())
	}
	return strings.Join(parts, "  "), false
}

func (m *Model) Prompt() views.Prompt {
	c := m.state.Document().Changes()
	return views.Prompt{
		Title:   m.state.Text("notepad.modal.title"),
		Message: m.state.Text("notepad.modal.message"),
		Summary: m.state.Textf("notepad.status.changes", c.Inserted, c.Deleted),
		Help: m.help.ShortHelpView([]key.Binding{
			withDesc(m.keys.Discard, m.state.Text("notepad.modal.discard")),
			withDesc(m.keys.Cancel, m.state.Text("notepad.modal.cancel")),
			withDesc(m.keys.Confirm, m.state.Text("notepad.modal.save")),
		}),
	}
}

func (m *Model) PathPromptView() string {
	return m.pathPrompt.View()
}

func (m *Model) HelpView() string {
	if m.Confirming() {
		return ""
	}
	if m.state.Screen() == types.Settings {
		return m.help.ShortHelpView([]key.Binding{
			m.keys.Up, m.keys.Down, m.keys.Right, m.keys.Toggle,
			withDesc(m.keys.Save, m.state.Text("settings.save")),
			withDesc(m.keys.Apply, m.state.Text("settings.apply")),
			withDesc(m.keys.Back, m.state.Text("settings.cancel")),
		})
	}
	return m.help.ShortHelpView([]key.Binding{
		withDesc(m.keys.New, m.state.Text("notepad.menu.file.new")),
		withDesc(m.keys.Open, m.state.Text("notepad.menu.file.open")),
		withDesc(m.keys.Save, m.state.Text("notepad.menu.file.save")),
		withDesc(m.keys.Settings, m.state.Text("notepad.menu.file.settings")),
		withDesc(m.keys.CopyAll, m.state.Text("notepad.menu.edit.copy_all")),
		withDesc(m.keys.Quit, m.state.Text("notepad.menu.file.quit")),
	})
}

// withDesc relabels a binding in the active language
func withDesc(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
