package notepad

import (
	"path/filepath"
	"testing"

	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/locale"

	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	quit      int
	refreshed int
	applied   []config.Settings
	catalogs  []*locale.Catalog
	errs      []error
	titles    []string
}

func (h *fakeHost) Quit()    { h.quit++ }
func (h *fakeHost) Refresh() { h.refreshed++ }

func (h *fakeHost) ApplySettings(s config.Settings, c *locale.Catalog) {
	h.applied = append(h.applied, s)
	h.catalogs = append(h.catalogs, c)
}

func (h *fakeHost) ShowError(title string, err error) {
	h.titles = append(h.titles, title)
	h.errs = append(h.errs, err)
}

// fakeDialogs answers every dialog synchronously with the queued result.
type fakeDialogs struct {
	openPath, savePath, folderPath string
	openCalls, saveCalls, folders  int
	starts                         []string
	openFilter, saveFilter         *document.Filter
}

func (d *fakeDialogs) OpenFile(start string, filter *document.Filter, done func(string, bool)) {
	d.openCalls++
	d.openFilter = filter
	d.starts = append(d.starts, start)
	done(d.openPath, d.openPath != "")
}

func (d *fakeDialogs) SaveFile(start string, filter *document.Filter, done func(string, bool)) {
	d.saveCalls++
	d.saveFilter = filter
	d.starts = append(d.starts, start)
	done(d.savePath, d.savePath != "")
}

func (d *fakeDialogs) Folder(start string, done func(string, bool)) {
	d.folders++
	d.starts = append(d.starts, start)
	done(d.folderPath, d.folderPath != "")
}

type fixture struct {
	state   *State
	host    *fakeHost
	dialogs *fakeDialogs
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	store := config.NewStoreWith(filepath.Join(dir, "config", config.FileName), config.Defaults())

	f := &fixture{
		state:   New(store),
		host:    &fakeHost{},
		dialogs: &fakeDialogs{},
		dir:     dir,
	}
	f.state.Attach(f.host, f.dialogs)
	require.NotNil(t, f.state.Catalog())
	return f
}
