package types

// PendingAction is the destructive operation deferred behind the unsaved-changes prompt
type PendingAction int

const (
	// NoAction means nothing is pending
	NoAction PendingAction = iota
	// NewFile resets the document
	NewFile
	// OpenFile asks for a file and loads it
	OpenFile
	// CloseApp terminates the process
	CloseApp
)

func (a PendingAction) String() string {
	switch a {
	case NoAction:
		return "none"
	case NewFile:
		return "new"
	case OpenFile:
		return "open"
	case CloseApp:
		return "close"
	default:
		return "unknown"
	}
}

// Choice is the user's answer to the unsaved-changes prompt
type Choice int

const (
	// Discard drops the edits and runs the pending action
	Discard Choice = iota
	// Cancel keeps the edits and drops the pending action
	Cancel
	// Save writes the document, clears the buffer and runs the pending action
	Save
)

func (c Choice) String() string {
	switch c {
	case Discard:
		return "discard"
	case Cancel:
		return "cancel"
	case Save:
		return "save"
	default:
		return "unknown"
	}
}

// Shortcut is a primary-modifier keyboard shortcut on the editor screen
type Shortcut int

const (
	// ShortcutNew is primary+N
	ShortcutNew Shortcut = iota
	// ShortcutOpen is primary+O
	ShortcutOpen
	// ShortcutSave is primary+S
	ShortcutSave
	// ShortcutSettings is primary+comma
	ShortcutSettings
)
