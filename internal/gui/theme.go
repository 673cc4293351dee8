package gui

import (
	"image/color"

	"notepad/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// notepadTheme pins the light or dark variant and scales text to the chosen size
type notepadTheme struct {
	variant   fyne.ThemeVariant
	textSize  float32
	monospace bool
}

var _ fyne.Theme = (*notepadTheme)(nil)

func newNotepadTheme(s config.Settings) *notepadTheme {
	variant := theme.VariantLight
	if s.DarkMode {
		variant = theme.VariantDark
	}
	return &notepadTheme{
		variant:   variant,
		textSize:  s.FontSize,
		monospace: s.FontName == config.FontMonospace,
	}
}

func (t *notepadTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *notepadTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.monospace {
		style.Monospace = true
	}
	return theme.DefaultTheme().Font(style)
}

func (t *notepadTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *notepadTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return theme.DefaultTheme().Size(name)
}
