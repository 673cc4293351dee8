package gui

import (
	"notepad/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// editorEntry is the multi-line text area. A focused Entry receives shortcuts before
// the canvas does, so ours are offered to the window first.
type editorEntry struct {
	widget.Entry
	onShortcut func(*desktop.CustomShortcut) bool
}

func newEditorEntry(onShortcut func(*desktop.CustomShortcut) bool) *editorEntry {
	e := &editorEntry{onShortcut: onShortcut}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut implements fyne.Shortcutable
func (e *editorEntry) TypedShortcut(s fyne.Shortcut) {
	if cs, ok := s.(*desktop.CustomShortcut); ok && e.onShortcut != nil && e.onShortcut(cs) {
		return
	}
	e.Entry.TypedShortcut(s)
}

// Primary modifier is Cmd on macOS and Ctrl elsewhere
var shortcutKeys = map[fyne.KeyName]types.Shortcut{
	fyne.KeyN:     types.ShortcutNew,
	fyne.KeyO:     types.ShortcutOpen,
	fyne.KeyS:     types.ShortcutSave,
	fyne.KeyComma: types.ShortcutSettings,
}

func shortcuts() []*desktop.CustomShortcut {
	keys := []fyne.KeyName{fyne.KeyN, fyne.KeyO, fyne.KeyS, fyne.KeyComma}
	out := make([]*desktop.CustomShortcut, 0, len(keys))
	for _, k := range keys {
		out = append(out, &desktop.CustomShortcut{KeyName: k, Modifier: fyne.KeyModifierShortcutDefault})
	}
	return out
}

func shortcutAction(sc *desktop.CustomShortcut) (types.Shortcut, bool) {
	if sc == nil || sc.Modifier != fyne.KeyModifierShortcutDefault {
		return 0, false
	}
	action, ok := shortcutKeys[sc.KeyName]
	return action, ok
}
