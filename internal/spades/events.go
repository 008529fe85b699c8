package spades

import "fmt"

// EventLog keeps the most recent human-readable entries, oldest first.
// It is informational only; nothing in the engine reads it back.
type EventLog struct {
	limit   int
	entries []string
}

func newEventLog(limit int) EventLog { return EventLog{limit: limit} }

func (l *EventLog) add(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append([]string(nil), l.entries[over:]...)
	}
}

func (l EventLog) clone() EventLog {
	return EventLog{limit: l.limit, entries: append([]string(nil), l.entries...)}
}

// Entries returns a copy of the log, oldest first.
func (l EventLog) Entries() []string { return append([]string(nil), l.entries...) }

func (l EventLog) Len() int { return len(l.entries) }
