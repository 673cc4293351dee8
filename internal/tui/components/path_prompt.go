package components

import (
	"os"
	"path/filepath"
	"sort"

	"notepad/internal/document"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathPrompt is a one-line path entry standing in for a file dialog.
// Enter confirms, esc cancels; tab accepts the suggested file name.
type PathPrompt struct {
	input  textinput.Model
	title  string
	done   func(path string, ok bool)
	active bool
}

func NewPathPrompt() *PathPrompt {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.ShowSuggestions = true
	return &PathPrompt{input: ti}
}

// Open shows the prompt prefilled with start. done runs once when it closes.
func (p *PathPrompt) Open(title, start string, suggestions []string, done func(string, bool)) tea.Cmd {
	p.title = title
	p.done = done
	p.active = true

	p.input.Prompt = title + " "
	p.input.SetValue(start)
	p.input.CursorEnd()
	p.input.SetSuggestions(suggestions)
	return p.input.Focus()
}

// Active reports whether the prompt is waiting for input.
func (p *PathPrompt) Active() bool {
	return p.active
}

// Value returns the text typed so far.
func (p *PathPrompt) Value() string {
	return p.input.Value()
}

// Update handles a message while the prompt is active
func (p *PathPrompt) Update(msg tea.Msg) tea.Cmd {
	if !p.active {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			value := p.input.Value()
			p.finish(value, value != "")
			return nil
		case tea.KeyEsc:
			p.finish("", false)
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// finish closes the prompt before calling done so done may open it again.
func (p *PathPrompt) finish(path string, ok bool) {
	done := p.done
	p.done = nil
	p.active = false
	p.input.Blur()
	p.input.SetSuggestions(nil)
	if done != nil {
		done(path, ok)
	}
}

func (p *PathPrompt) View() string {
	if !p.active {
		return ""
	}
	return p.input.View()
}

// Suggestions lists the files in dir accepted by filter as full paths.
// With dirsOnly it lists sub-directories instead.
func Suggestions(dir string, filter *document.Filter, dirsOnly bool) []string {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() != dirsOnly {
			continue
		}
		if !dirsOnly && !filter.Match(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out
}
