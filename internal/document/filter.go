package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultPatterns is the file-dialog hint offered for documents.
var DefaultPatterns = []string{"*.txt"}

// Filter matches file names against glob patterns, ignoring case.
// An empty filter matches every name.
type Filter struct {
	patterns []string
	globs    []glob.Glob
}

// NewFilter compiles patterns such as "*.txt" or "*.{md,markdown}".
func NewFilter(patterns ...string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, p)
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// DefaultFilter returns the filter for DefaultPatterns.
func DefaultFilter() *Filter {
	f, _ := NewFilter(DefaultPatterns...)
	return f
}

// Match reports whether the base name of path matches any pattern.
func (f *Filter) Match(path string) bool {
	if f == nil || len(f.globs) == 0 {
		return true
	}
	name := strings.ToLower(filepath.Base(path))
	for _, g := range f.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.patterns...)
}

// String renders the patterns for display, e.g. "*.txt, *.md".
func (f *Filter) String() string {
	return strings.Join(f.Patterns(), ", ")
}
