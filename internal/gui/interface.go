package gui

import (
	"notepad/internal/notepad"

	"fyne.io/fyne/v2"
)

// Interface defines the contract for GUI operations
type Interface interface {
	notepad.Host
	Run()
	GetMainWindow() fyne.Window
}

var (
	_ Interface       = (*App)(nil)
	_ notepad.Dialogs = (*fileDialogs)(nil)
)
