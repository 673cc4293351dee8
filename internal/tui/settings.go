package tui

import (
	"fmt"

	"notepad/internal/config"
	"notepad/internal/tui/views"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingField int

const (
	fieldDarkMode settingField = iota
	fieldFont
	fieldFontSize
	fieldDefaultPath
	fieldLanguage
	fieldConfirmOnClose
	fieldCount
)

func (m *Model) handleSettingsKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.changeField(-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		m.changeField(1)
	case key.Matches(msg, m.keys.Save):
		m.state.SaveSettings()
	case key.Matches(msg, m.keys.Apply):
		m.state.ApplySettings()
	case key.Matches(msg, m.keys.Back):
		m.state.CancelSettings()
		m.cursor = fieldDarkMode
	}
	return nil
}

// changeField steps the draft value under the cursor by delta.
func (m *Model) changeField(delta int) {
	d := m.state.Draft()

	switch m.cursor {
	case fieldDarkMode:
		d.DarkMode = !d.DarkMode
	case fieldFont:
		d.FontName = cycle(config.Fonts(), d.FontName, delta)
	case fieldFontSize:
		size := d.FontSize + float32(delta)
		if size >= config.MinFontSize && size <= config.MaxFontSize {
			d.FontSize = size
		}
	case fieldDefaultPath:
		if delta > 0 {
			m.state.PickDefaultPath()
		}
	case fieldLanguage:
		d.Language = cycle(config.Languages(), d.Language, delta)
	case fieldConfirmOnClose:
		d.ConfirmOnClose = !d.ConfirmOnClose
	}
}

func cycle[T comparable](values []T, current T, delta int) T {
	i := 0
	for j, v := range values {
		if v == current {
			i = j
			break
		}
	}
	n := len(values)
	return values[((i+delta)%n+n)%n]
}

// SettingsTitle implements views.ModelReader
func (m *Model) SettingsTitle() string {
	return m.state.Text("settings.title")
}

// SettingsCursor implements views.ModelReader
func (m *Model) SettingsCursor() int {
	return int(m.cursor)
}

// SettingRows implements views.ModelReader
func (m *Model) SettingRows() []views.SettingRow {
	t := m.state.Text
	d := m.state.Draft()

	font := t("settings.font.default")
	if d.FontName == config.FontMonospace {
		font = t("settings.font.monospace")
	}
	path := d.DefaultPath
	if path == "" {
		path = "-"
	}

	return []views.SettingRow{
		{Label: t("settings.dark_mode"), Value: checkbox(d.DarkMode)},
		{Label: t("settings.font_name"), Value: "< " + font + " >"},
		{Label: t("settings.font_size"), Value: fmt.Sprintf("< %.0f >", d.FontSize)},
		{Label: t("settings.default_path"), Value: path + "  [" + t("settings.browse") + "]"},
		{Label: t("settings.language"), Value: "< " + d.Language.Name() + " >"},
		{Label: t("settings.confirm_on_close"), Value: checkbox(d.ConfirmOnClose)},
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
