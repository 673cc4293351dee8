package types

// Screen is the process-wide UI mode
type Screen int

const (
	// Editor is the text editing screen and the startup screen
	Editor Screen = iota
	// Settings is the configuration screen
	Settings
)

func (s Screen) String() string {
	switch s {
	case Editor:
		return "editor"
	case Settings:
		return "settings"
	default:
		return "unknown"
	}
}

// PromptState tells whether the unsaved-changes prompt is showing
type PromptState int

const (
	// Idle means no prompt is visible and nothing is pending
	Idle PromptState = iota
	// Confirming means the prompt is visible with exactly one pending action
	Confirming
)

func (p PromptState) String() string {
	if p == Confirming {
		return "confirming"
	}
	return "idle"
}
