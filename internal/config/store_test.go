package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"notepad/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	store, err := config.NewStore(path)
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), store.Active())
	assert.Equal(t, store.Active(), *store.Draft())
	assert.False(t, store.DraftChanged())
}

func TestNewStoreMalformedFile(t *testing.T) {
	path := createTestJSON(t, malformedJSON)
	store, err := config.NewStore(path)
	require.Error(t, err)
	require.NotNil(t, store, "a malformed file never aborts startup")
	assert.Equal(t, config.Defaults(), store.Active())
}

func TestCommitDraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", config.FileName)
	store := config.NewStoreWith(path, config.Defaults())

	store.Draft().Language = config.Spanish
	store.Draft().DarkMode = false
	assert.True(t, store.DraftChanged())
	assert.Equal(t, config.English, store.Active().Language, "draft edits do not leak into active")

	require.NoError(t, store.CommitDraft())
	assert.Equal(t, config.Spanish, store.Active().Language)
	assert.False(t, store.Active().DarkMode)
	assert.False(t, store.DraftChanged())

	// Draft is a copy, not an alias
	store.Draft().FontSize = 20
	assert.Equal(t, float32(12), store.Active().FontSize)

	persisted, err := config.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Spanish, persisted.Language)
}

func TestCommitDraftPersistFailureKeepsActive(t *testing.T) {
	// A regular file where the parent directory should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	store := config.NewStoreWith(filepath.Join(blocker, config.FileName), config.Defaults())

	store.Draft().Language = config.French
	err := store.CommitDraft()
	require.Error(t, err)
	assert.Equal(t, config.French, store.Active().Language, "active follows the draft even when the write fails")
}

func TestDiscardDraft(t *testing.T) {
	store := config.NewStoreWith("", config.Defaults())

	store.Draft().Language = config.Spanish
	store.DiscardDraft()

	assert.Equal(t, config.English, store.Active().Language)
	assert.Equal(t, config.English, store.Draft().Language)
}

func TestCommitInvalidDraft(t *testing.T) {
	store := config.NewStoreWith("", config.Defaults())
	store.Draft().FontSize = 200

	require.Error(t, store.CommitDraft())
	assert.Equal(t, float32(12), store.Active().FontSize)
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	s := config.Defaults()
	s.DarkMode = false
	store := config.NewStoreWith(path, s)

	require.NoError(t, store.Reset())
	assert.Equal(t, config.Defaults(), store.Active())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
