package messages

import (
	"notepad/internal/watch"
)

// ChangeMsg reports an event on the document's file
type ChangeMsg struct {
	Change watch.Change
}
