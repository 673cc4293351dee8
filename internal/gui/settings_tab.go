package gui

import (
	"fmt"

	"notepad/internal/config"
	"notepad/internal/notepad"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// settingsForm edits the draft settings. Every widget writes straight into the draft;
// nothing reaches the active settings until Save or Apply.
type settingsForm struct {
	state   *notepad.State
	content fyne.CanvasObject

	darkCheck     *widget.Check
	fontSelect    *widget.Select
	sizeSlider    *widget.Slider
	sizeLabel     *widget.Label
	pathEntry     *widget.Entry
	languageRadio *widget.RadioGroup
	confirmCheck  *widget.Check

	saveButton   *widget.Button
	applyButton  *widget.Button
	cancelButton *widget.Button
	browseButton *widget.Button

	fontByLabel     map[string]string
	languageByLabel map[string]config.Language
}

func newSettingsForm(state *notepad.State) *settingsForm {
	text := state.Text
	f := &settingsForm{
		state:           state,
		fontByLabel:     make(map[string]string),
		languageByLabel: make(map[string]config.Language),
	}

	// --- Appearance ---
	f.darkCheck = widget.NewCheck(text("settings.dark_mode"), func(value bool) {
		state.Draft().DarkMode = value
	})

	fontLabels := []string{}
	for _, name := range config.Fonts() {
		label := fontLabel(state, name)
		fontLabels = append(fontLabels, label)
		f.fontByLabel[label] = name
	}
	f.fontSelect = widget.NewSelect(fontLabels, func(label string) {
		if name, ok := f.fontByLabel[label]; ok {
			state.Draft().FontName = name
		}
	})

	f.sizeLabel = widget.NewLabel("")
	f.sizeSlider = widget.NewSlider(config.MinFontSize, config.MaxFontSize)
	f.sizeSlider.Step = 1
	f.sizeSlider.OnChanged = func(value float64) {
		state.Draft().FontSize = float32(value)
		f.sizeLabel.SetText(fmt.Sprintf("%.0f", value))
	}

	// --- Behaviour ---
	f.pathEntry = widget.NewEntry()
	f.pathEntry.OnChanged = func(text string) {
		state.Draft().DefaultPath = text
	}
	f.browseButton = widget.NewButton(text("settings.browse"), state.PickDefaultPath)

	languageLabels := []string{}
	for _, lang := range config.Languages() {
		languageLabels = append(languageLabels, lang.Name())
		f.languageByLabel[lang.Name()] = lang
	}
	f.languageRadio = widget.NewRadioGroup(languageLabels, func(label string) {
		if lang, ok := f.languageByLabel[label]; ok {
			state.Draft().Language = lang
		}
	})
	f.languageRadio.Horizontal = true
	f.languageRadio.Required = true

	f.confirmCheck = widget.NewCheck(text("settings.confirm_on_close"), func(value bool) {
		state.Draft().ConfirmOnClose = value
	})

	form := widget.NewForm(
		widget.NewFormItem("", f.darkCheck),
		widget.NewFormItem(text("settings.font_name"), f.fontSelect),
		widget.NewFormItem(text("settings.font_size"), container.NewBorder(nil, nil, nil, f.sizeLabel, f.sizeSlider)),
		widget.NewFormItem(text("settings.default_path"), container.NewBorder(nil, nil, nil, f.browseButton, f.pathEntry)),
		widget.NewFormItem(text("settings.language"), f.languageRadio),
		widget.NewFormItem("", f.confirmCheck),
	)

	f.saveButton = widget.NewButton(text("settings.save"), state.SaveSettings)
	f.saveButton.Importance = widget.HighImportance
	f.applyButton = widget.NewButton(text("settings.apply"), state.ApplySettings)
	f.cancelButton = widget.NewButton(text("settings.cancel"), state.CancelSettings)

	f.content = container.NewBorder(
		widget.NewLabelWithStyle(text("settings.title"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(layout.NewSpacer(), f.cancelButton, f.applyButton, f.saveButton),
		nil,
		nil,
		container.NewVScroll(form),
	)
	return f
}

// sync loads the draft into the widgets.
func (f *settingsForm) sync() {
	d := *f.state.Draft()

	f.darkCheck.SetChecked(d.DarkMode)
	f.fontSelect.SetSelected(fontLabel(f.state, d.FontName))
	f.sizeSlider.SetValue(float64(d.FontSize))
	f.sizeLabel.SetText(fmt.Sprintf("%.0f", d.FontSize))
	if f.pathEntry.Text != d.DefaultPath {
		f.pathEntry.SetText(d.DefaultPath)
	}
	f.languageRadio.SetSelected(d.Language.Name())
	f.confirmCheck.SetChecked(d.ConfirmOnClose)
}

func fontLabel(state *notepad.State, name string) string {
	switch name {
	case config.FontMonospace:
		return state.Text("settings.font.monospace")
	default:
		return state.Text("settings.font.default")
	}
}
