package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogEntry holds every time a principal performed one kind of action on
// one question. Timestamps are kept in recording order and are never empty for
// a persisted entry.
type ActionLogEntry struct {
	Principal  Principal
	Kind       LogKind
	QuestionID uuid.UUID
	Timestamps []time.Time
}

// Count returns how many times the action is currently recorded.
func (e *ActionLogEntry) Count() int {
	return len(e.Timestamps)
}

// Last returns the most recent timestamp.
func (e *ActionLogEntry) Last() (time.Time, bool) {
	if len(e.Timestamps) == 0 {
		return time.Time{}, false
	}
	return e.Timestamps[len(e.Timestamps)-1], true
}
