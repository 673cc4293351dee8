// Package document holds the text buffer being edited and its binding to a file on disk.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"notepad/internal/errors"
	"notepad/internal/log"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrNoPath is returned by Save when the document was never bound to a file.
var ErrNoPath = errors.NewFileError("document has no file", "", errors.InvalidPath, nil)

// Document is the in-memory text plus the snapshot last read from or written to disk.
type Document struct {
	content string
	path    string

	// persisted is nil until the document has been opened or saved
	persisted *string
}

// New returns an empty, unbound document.
func New() *Document {
	return &Document{}
}

// Reset clears the buffer, the bound path and the snapshot.
// Callers must have satisfied the unsaved-changes policy first.
func (d *Document) Reset() {
	d.content = ""
	d.path = ""
	d.persisted = nil
}

// Content returns the live buffer.
func (d *Document) Content() string {
	return d.content
}

// SetContent replaces the live buffer, as the editor does on every keystroke.
func (d *Document) SetContent(text string) {
	d.content = text
}

// Path returns the bound file path, empty when unbound.
func (d *Document) Path() string {
	return d.path
}

// HasPath reports whether the document is bound to a file.
func (d *Document) HasPath() bool {
	return d.path != ""
}

// Persisted returns the last snapshot and whether one exists.
func (d *Document) Persisted() (string, bool) {
	if d.persisted == nil {
		return "", false
	}
	return *d.persisted, true
}

// HasUnsavedChanges reports whether the buffer differs from what is on disk.
// A never-saved document is dirty as soon as it holds any text.
func (d *Document) HasUnsavedChanges() bool {
	if d.persisted == nil {
		return d.content != ""
	}
	return d.content != *d.persisted
}

// Title returns the bound file's base name, or untitled.
func (d *Document) Title(untitled string) string {
	if d.path == "" {
		return untitled
	}
	return filepath.Base(d.path)
}

// Open loads path into the buffer and marks the document clean.
// Files that are not text are refused. On failure the document is left unchanged.
func (d *Document) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.FromFS("cannot open document", path, err, errors.FileReadFailed)
	}
	if mt := mimetype.Detect(data); !isText(mt) {
		return errors.NewFileError("not a text file", path, errors.UnsupportedContent,
			fmt.Errorf("detected %s", mt.String()))
	}

	d.content = string(data)
	d.path = path
	d.markPersisted()
	log.LogWithFields(log.F("path", path), log.F("bytes", len(data))).Info("document opened")
	return nil
}

// Save writes the buffer to the bound path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the buffer to path and binds the document to it.
// On failure buffer, path and snapshot are left unchanged.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := writeAtomic(path, []byte(d.content)); err != nil {
		return errors.FromFS("cannot save document", path, err, errors.FileWriteFailed)
	}

	d.path = path
	d.markPersisted()
	log.LogWithFields(log.F("path", path), log.F("bytes", len(d.content))).Info("document saved")
	return nil
}

// ChangedOnDisk reports whether the bound file no longer matches the snapshot,
// meaning another program wrote to it.
func (d *Document) ChangedOnDisk() (bool, error) {
	if d.path == "" || d.persisted == nil {
		return false, nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, errors.FromFS("cannot check document", d.path, err, errors.FileReadFailed)
	}
	return string(data) != *d.persisted, nil
}

func (d *Document) markPersisted() {
	snapshot := d.content
	d.persisted = &snapshot
}

// isText reports whether mt is text/plain or one of its descendants (json, csv, html...).
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// writeAtomic writes data next to path and renames it into place,
// so a failed write never truncates the existing file. A symlinked path
// is resolved first so the link survives and its target gets the data.
// An existing file keeps its permission bits.
func writeAtomic(path string, data []byte) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	// WriteFile is subject to the umask
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
