package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the terminal keybindings.
// It lives in pkg/types so the model and its help view share one definition.
type KeyMap struct {
	// Editor
	New      key.Binding
	Open     key.Binding
	Save     key.Binding
	Settings key.Binding
	Quit     key.Binding
	Close    key.Binding
	CopyAll  key.Binding

	// Unsaved-changes prompt
	Discard key.Binding
	Cancel  key.Binding
	Confirm key.Binding

	// Settings screen
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Apply  key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the bindings used by the terminal front-end.
// Terminals cannot report ctrl+comma, so settings also answers to ctrl+p and f2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Settings: key.NewBinding(key.WithKeys("ctrl+p", "f2"), key.WithHelp("ctrl+p", "settings")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Close:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "close")),
		CopyAll:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy all")),

		Discard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "discard")),
		Cancel:  key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "change")),
		Apply:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
