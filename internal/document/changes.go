package document

import (
	"unicode/utf8"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Summary counts the characters inserted and deleted since the last snapshot.
type Summary struct {
	Inserted int
	Deleted  int
}

// Empty reports whether nothing changed.
func (s Summary) Empty() bool {
	return s.Inserted == 0 && s.Deleted == 0
}

// Changes diffs the snapshot (empty when never persisted) against the buffer.
func (d *Document) Changes() Summary {
	before, _ := d.Persisted()
	return Diff(before, d.content)
}

// Diff counts rune insertions and deletions turning before into after.
func Diff(before, after string) Summary {
	if before == after {
		return Summary{}
	}

	differ := dmp.New()
	diffs := differ.DiffMain(before, after, false)
	differ.DiffCleanupSemantic(diffs)

	var s Summary
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			s.Inserted += utf8.RuneCountInString(df.Text)
		case dmp.DiffDelete:
			s.Deleted += utf8.RuneCountInString(df.Text)
		}
	}
	return s
}
