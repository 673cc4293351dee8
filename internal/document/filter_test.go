package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, []string{"*.txt"}, f.Patterns())
	assert.True(t, f.Match("/home/user/notes.txt"))
	assert.True(t, f.Match("README.TXT"))
	assert.False(t, f.Match("image.png"))
	assert.False(t, f.Match("notes.txt.bak"))
}

func TestFilterPatterns(t *testing.T) {
	f, err := NewFilter("*.{md,markdown}", " ", "notes-*")
	require.NoError(t, err)

	assert.Equal(t, "*.{md,markdown}, notes-*", f.String())
	assert.True(t, f.Match("doc.md"))
	assert.True(t, f.Match("doc.markdown"))
	assert.True(t, f.Match("notes-2024"))
	assert.False(t, f.Match("doc.txt"))
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f, err := NewFilter()
	require.NoError(t, err)
	assert.True(t, f.Match("anything.bin"))

	var nilFilter *Filter
	assert.True(t, nilFilter.Match("anything.bin"))
}

func TestInvalidPattern(t *testing.T) {
	_, err := NewFilter("[a-")
	assert.Error(t, err)
}
