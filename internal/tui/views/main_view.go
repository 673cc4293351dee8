package views

import (
	"strings"

	"notepad/internal/tui/styles"
	"notepad/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// SettingRow is one line of the settings screen
type SettingRow struct {
	Label string
	Value string
}

// Prompt is the text of the unsaved-changes prompt
type Prompt struct {
	Title   string
	Message string
	Summary string
	Help    string
}

// ModelReader is what the views need from the model
type ModelReader interface {
	Styles() styles.Styles
	Screen() types.Screen
	Confirming() bool
	Header() string
	Modified() bool
	EditorView() string
	StatusLine() (text string, isError bool)
	SettingsTitle() string
	SettingRows() []SettingRow
	SettingsCursor() int
	Prompt() Prompt
	PathPromptView() string
	HelpView() string
	Width() int
	Height() int
}

// RenderMainView renders the active screen, the path prompt and the unsaved-changes prompt
func RenderMainView(m ModelReader) string {
	var body string
	if m.Confirming() {
		body = RenderPrompt(m)
	} else if m.Screen() == types.Settings {
		body = RenderSettings(m)
	} else {
		body = RenderEditor(m)
	}

	var sb strings.Builder
	sb.WriteString(body)
	if p := m.PathPromptView(); p != "" {
		sb.WriteString("\n" + p)
	}
	sb.WriteString("\n" + renderStatus(m))
	sb.WriteString("\n" + m.Styles().Help.Render(m.HelpView()))

	return m.Styles().App.Render(sb.String())
}

// RenderEditor renders the header line and the text area
func RenderEditor(m ModelReader) string {
	s := m.Styles()
	header := s.Title.Render(m.Header())
	if m.Modified() {
		header += " " + s.Modified.Render("●")
	}
	return header + "\n" + s.Editor.Render(m.EditorView())
}

// RenderSettings renders one row per setting with the cursor row highlighted
func RenderSettings(m ModelReader) string {
	s := m.Styles()
	var sb strings.Builder
	sb.WriteString(s.Title.Render(m.SettingsTitle()) + "\n\n")

	rows := m.SettingRows()
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > width {
			width = w
		}
	}

	for i, r := range rows {
		line := lipgloss.NewStyle().Width(width).Render(r.Label) + "  " + r.Value
		if i == m.SettingsCursor() {
			sb.WriteString(s.Selected.Render("> " + line))
		} else {
			sb.WriteString(s.Unselected.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPrompt renders the unsaved-changes prompt centered in the terminal
func RenderPrompt(m ModelReader) string {
	s := m.Styles()
	p := m.Prompt()
	box := s.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(p.Title),
		"",
		p.Message,
		s.Status.Render(p.Summary),
		"",
		s.Help.Render(p.Help),
	))

	if m.Width() <= 0 || m.Height() <= 0 {
		return box
	}
	return lipgloss.Place(m.Width(), m.Height()-3, lipgloss.Center, lipgloss.Center, box)
}

func renderStatus(m ModelReader) string {
	text, isError := m.StatusLine()
	if isError {
		return m.Styles().Error.Render(text)
	}
	return m.Styles().Status.Render(text)
}
