package gui

import (
	"notepad/internal/document"
	"notepad/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fileDialogs implements notepad.Dialogs with Fyne's file dialogs.
// Callbacks arrive on the UI thread after the dialog closes.
type fileDialogs struct {
	window fyne.Window
}

func (d *fileDialogs) OpenFile(start string, filter *document.Filter, done func(string, bool)) {
	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.LogWithFields(log.F("error", err)).Error("Open dialog failed")
			done("", false)
			return
		}
		if reader == nil {
			done("", false)
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		done(path, true)
	}, d.window)

	dlg.SetFilter(fileFilter(filter))
	if loc := listerFor(start); loc != nil {
		dlg.SetLocation(loc)
	}
	dlg.Resize(d.dialogSize())
	dlg.Show()
}

func (d *fileDialogs) SaveFile(start string, filter *document.Filter, done func(string, bool)) {
	dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.LogWithFields(log.F("error", err)).Error("Save dialog failed")
			done("", false)
			return
		}
		if writer == nil {
			done("", false)
			return
		}
		path := writer.URI().Path()
		// The document writes the file itself
		_ = writer.Close()
		done(path, true)
	}, d.window)

	dlg.SetFilter(fileFilter(filter))
	if loc := listerFor(start); loc != nil {
		dlg.SetLocation(loc)
	}
	dlg.Resize(d.dialogSize())
	dlg.Show()
}

func (d *fileDialogs) Folder(start string, done func(string, bool)) {
	dlg := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			log.LogWithFields(log.F("error", err)).Error("Folder dialog failed")
			done("", false)
			return
		}
		if dir == nil {
			done("", false)
			return
		}
		done(dir.Path(), true)
	}, d.window)

	if loc := listerFor(start); loc != nil {
		dlg.SetLocation(loc)
	}
	dlg.Resize(d.dialogSize())
	dlg.Show()
}

func (d *fileDialogs) dialogSize() fyne.Size {
	size := d.window.Canvas().Size()
	return fyne.NewSize(size.Width*0.8, size.Height*0.8)
}

// listerFor returns the dialog start location, or nil to keep Fyne's default.
func listerFor(dir string) fyne.ListableURI {
	if dir == "" {
		return nil
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("Default folder not listable")
		return nil
	}
	return lister
}

// fileFilter returns nil for a nil filter so the dialog lists every file.
func fileFilter(filter *document.Filter) storage.FileFilter {
	if filter == nil {
		return nil
	}
	return globFilter{filter: filter}
}

// globFilter adapts document.Filter to storage.FileFilter.
type globFilter struct {
	filter *document.Filter
}

func (g globFilter) Matches(uri fyne.URI) bool {
	return g.filter.Match(uri.Name())
}
