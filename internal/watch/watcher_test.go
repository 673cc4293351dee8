package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, ch <-chan Change, path string) Change {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			require.True(t, ok, "Change channel closed unexpectedly")
			if c.Path == path {
				return c
			}
		case <-timeout:
			t.Fatalf("Timeout waiting for change on %s", path)
		}
	}
}

func TestWatcherSeesWrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(path))
	assert.Equal(t, path, w.Target())

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	c := waitForChange(t, w.Changes(), path)
	assert.True(t, c.Op.Has(fsnotify.Write) || c.Op.Has(fsnotify.Create))
	assert.False(t, c.Removed())
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Watch(path))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "other.txt"), []byte("x"), 0644))

	select {
	case c := <-w.Changes():
		t.Fatalf("unexpected change %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSeesRemoval(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()
	require.NoError(t, w.Watch(path))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.Remove(path))
	c := waitForChange(t, w.Changes(), path)
	assert.True(t, c.Removed())
}

func TestWatcherRetarget(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.txt")
	second := filepath.Join(t.TempDir(), "b.txt")
	require.NoError(t, os.WriteFile(first, nil, 0644))
	require.NoError(t, os.WriteFile(second, nil, 0644))

	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, second, w.Target())
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(second, []byte("b"), 0644))
	waitForChange(t, w.Changes(), second)

	require.NoError(t, w.Watch(""))
	assert.Equal(t, "", w.Target())
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "nope", "a.txt"))
	assert.Error(t, err)
	assert.Equal(t, "", w.Target())
}

func TestStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	assert.True(t, w.IsRunning())

	w.Stop()
	w.Stop()
	assert.False(t, w.IsRunning())

	_, ok := <-w.Changes()
	assert.False(t, ok, "Changes is closed after Stop")
	assert.Error(t, w.Watch("a.txt"))
}
