package styles

import "github.com/charmbracelet/lipgloss"

// Styles defines the core UI styles for one theme variant
type Styles struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Modified   lipgloss.Style
	Editor     lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
	Dialog     lipgloss.Style
}

type palette struct {
	accent, text, muted, border, danger, ok string
}

var (
	dark = palette{
		accent: "#7B61FF",
		text:   "#E4E4E4",
		muted:  "#666666",
		border: "#626262",
		danger: "#FF5F5F",
		ok:     "#73F59F",
	}
	light = palette{
		accent: "#4F4FB7",
		text:   "#1F1F1F",
		muted:  "#8A8A8A",
		border: "#B0B0B0",
		danger: "#D70000",
		ok:     "#008700",
	}
)

// For returns the dark or light styles
func For(darkMode bool) Styles {
	p := light
	if darkMode {
		p = dark
	}

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),
		Modified: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.danger)),
		Editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Foreground(lipgloss.Color(p.text)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ok)).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 2),
	}
}
