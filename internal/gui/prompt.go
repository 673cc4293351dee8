package gui

import (
	"notepad/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// unsavedPrompt is the three-button dialog shown while an action waits for an answer
type unsavedPrompt struct {
	dialog  *dialog.CustomDialog
	discard *widget.Button
	cancel  *widget.Button
	save    *widget.Button
}

func (a *App) showPrompt() {
	if a.prompt != nil {
		return
	}

	text := a.state.Text
	changes := a.state.Document().Changes()
	message := widget.NewLabel(text("notepad.modal.message"))
	message.Wrapping = fyne.TextWrapWord
	summary := widget.NewLabelWithStyle(
		a.state.Textf("notepad.status.changes", changes.Inserted, changes.Deleted),
		fyne.TextAlignLeading, fyne.TextStyle{Monospace: true},
	)

	p := &unsavedPrompt{}
	p.discard = widget.NewButton(text("notepad.modal.discard"), func() { a.resolve(types.Discard) })
	p.cancel = widget.NewButton(text("notepad.modal.cancel"), func() { a.resolve(types.Cancel) })
	p.save = widget.NewButton(text("notepad.modal.save"), func() { a.resolve(types.Save) })
	p.save.Importance = widget.HighImportance
	p.discard.Importance = widget.DangerImportance

	p.dialog = dialog.NewCustomWithoutButtons(text("notepad.modal.title"),
		container.NewVBox(message, summary), a.mainWindow)
	p.dialog.SetButtons([]fyne.CanvasObject{p.discard, p.cancel, p.save})

	a.prompt = p
	p.dialog.Show()
}

func (a *App) hidePrompt() {
	if a.prompt == nil {
		return
	}
	p := a.prompt
	a.prompt = nil
	p.dialog.Hide()
}

func (a *App) resolve(choice types.Choice) {
	// Hidden first so dialogs opened by the resolution stack above the editor
	a.hidePrompt()
	a.state.Resolve(choice)
}
