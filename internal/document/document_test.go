package document

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"notepad/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDocumentIsClean(t *testing.T) {
	d := New()
	assert.False(t, d.HasUnsavedChanges())
	assert.False(t, d.HasPath())
	_, ok := d.Persisted()
	assert.False(t, ok)
	assert.Equal(t, "Untitled", d.Title("Untitled"))
}

func TestUnboundTextIsDirty(t *testing.T) {
	d := New()
	for _, text := range []string{"a", " ", "\n", "hello world"} {
		d.SetContent(text)
		assert.True(t, d.HasUnsavedChanges(), "content %q", text)
	}
	d.SetContent("")
	assert.False(t, d.HasUnsavedChanges())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "foo")

	d := New()
	require.NoError(t, d.Open(path))
	assert.Equal(t, "foo", d.Content())
	assert.Equal(t, path, d.Path())
	assert.Equal(t, "a.txt", d.Title("Untitled"))
	assert.False(t, d.HasUnsavedChanges())

	d.SetContent("foobar")
	assert.True(t, d.HasUnsavedChanges())
	d.SetContent("foo")
	assert.False(t, d.HasUnsavedChanges(), "reverting to the snapshot is clean")
}

func TestOpenEmptyFileThenTyping(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.txt", "")

	d := New()
	require.NoError(t, d.Open(path))
	assert.False(t, d.HasUnsavedChanges())
	d.SetContent("x")
	assert.True(t, d.HasUnsavedChanges())
}

func TestOpenMissingLeavesDocumentUnchanged(t *testing.T) {
	dir := t.TempDir()
	d := New()
	d.SetContent("draft")

	err := d.Open(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))

	assert.Equal(t, "draft", d.Content())
	assert.False(t, d.HasPath())
	assert.True(t, d.HasUnsavedChanges())
}

func TestOpenDirectoryFails(t *testing.T) {
	d := New()
	err := d.Open(t.TempDir())
	require.Error(t, err)

	var fe *errors.FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "", d.Content())
}

func TestOpenBinaryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	require.NoError(t, os.WriteFile(path, png, 0644))

	d := New()
	d.SetContent("keep me")
	err := d.Open(path)
	require.Error(t, err)
	assert.Equal(t, errors.UnsupportedContent, errors.KindOf(err))
	assert.Equal(t, "keep me", d.Content())
	assert.False(t, d.HasPath())
}

func TestOpenStructuredText(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"data.json": `{"a": 1}`,
		"table.csv": "a,b\n1,2\n",
		"page.html": "<html><body>hi</body></html>",
	} {
		d := New()
		require.NoError(t, d.Open(writeFile(t, dir, name, content)), name)
		assert.Equal(t, content, d.Content())
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "old")

	d := New()
	require.NoError(t, d.Open(path))
	d.SetContent("new")
	require.NoError(t, d.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSaveThroughSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, dir, "real.txt", "foo")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	d := New()
	require.NoError(t, d.Open(link))
	d.SetContent("foobar")
	require.NoError(t, d.SaveAs(link))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link is still a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "foobar", string(data))
	assert.Equal(t, link, d.Path())
	assert.False(t, d.HasUnsavedChanges())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveKeepsFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := writeFile(t, t.TempDir(), "secret.txt", "foo")
	require.NoError(t, os.Chmod(path, 0600))

	d := New()
	require.NoError(t, d.Open(path))
	d.SetContent("bar")
	require.NoError(t, d.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveWithoutPath(t *testing.T) {
	d := New()
	d.SetContent("hello")
	err := d.Save()
	assert.ErrorIs(t, err, ErrNoPath)
	assert.True(t, d.HasUnsavedChanges())
}

func TestSaveAsBindsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	d := New()
	d.SetContent("hello")
	require.NoError(t, d.SaveAs(path))

	assert.Equal(t, path, d.Path())
	assert.False(t, d.HasUnsavedChanges())
	snapshot, ok := d.Persisted()
	assert.True(t, ok)
	assert.Equal(t, "hello", snapshot)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSaveTwiceIsIdempotent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "foo")

	d := New()
	require.NoError(t, d.Open(path))
	d.SetContent("foobar")

	require.NoError(t, d.Save())
	assert.False(t, d.HasUnsavedChanges())
	require.NoError(t, d.Save())
	assert.False(t, d.HasUnsavedChanges())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "foobar", string(data))
}

func TestSaveFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "foo")

	d := New()
	require.NoError(t, d.Open(path))
	d.SetContent("foobar")

	err := d.SaveAs(filepath.Join(dir, "no-such-dir", "b.txt"))
	require.Error(t, err)

	assert.Equal(t, path, d.Path())
	snapshot, _ := d.Persisted()
	assert.Equal(t, "foo", snapshot)
	assert.Equal(t, "foobar", d.Content())
	assert.True(t, d.HasUnsavedChanges())
}

func TestSaveToReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	d := New()
	d.SetContent("x")
	err := d.SaveAs(filepath.Join(dir, "x.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsFileAccessDenied(err))
	assert.False(t, d.HasPath())
}

func TestReset(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "foo")

	d := New()
	require.NoError(t, d.Open(path))
	d.SetContent("changed")
	d.Reset()

	assert.Equal(t, "", d.Content())
	assert.False(t, d.HasPath())
	assert.False(t, d.HasUnsavedChanges())
	_, ok := d.Persisted()
	assert.False(t, ok)
}

func TestChangedOnDisk(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "foo")

	d := New()
	changed, err := d.ChangedOnDisk()
	require.NoError(t, err)
	assert.False(t, changed, "unbound documents never drift")

	require.NoError(t, d.Open(path))
	changed, err = d.ChangedOnDisk()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(path, []byte("bar"), 0644))
	changed, err = d.ChangedOnDisk()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, os.Remove(path))
	changed, err = d.ChangedOnDisk()
	require.NoError(t, err)
	assert.True(t, changed)
}
