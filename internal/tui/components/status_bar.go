package components

// StatusBar holds a transient message shown under the editor until the next key press
type StatusBar struct {
	text    string
	isError bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
	s.isError = false
}

func (s *StatusBar) SetError(text string) {
	s.text = text
	s.isError = true
}

func (s *StatusBar) Clear() {
	s.text = ""
	s.isError = false
}

// Message returns the current message and whether it reports a failure
func (s *StatusBar) Message() (string, bool) {
	return s.text, s.isError
}
