package game

import (
	"fmt"
	"time"
)

// maxEvents caps the journal of one game.
const maxEvents = 200

// EventKind tags a journal entry.
type EventKind int

const (
	EventQuestion EventKind = iota
	EventHint
	EventWrong
	EventCorrect
	EventTimeout
)

func (k EventKind) String() string {
	switch k {
	case EventQuestion:
		return "question"
	case EventHint:
		return "hint"
	case EventWrong:
		return "wrong"
	case EventCorrect:
		return "correct"
	case EventTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Event is one thing that happened during a game.
type Event struct {
	// At is game time: how much of the clock had run.
	At       time.Duration
	Kind     EventKind
	Question string
	// Input is what the player typed and Command what the engine made of it.
	Input   string
	Command string
	Points  int
}

// String renders the event as one journal line, e.g.
// "0:07 wrong    del-line  \"dw\" -> dw".
func (e Event) String() string {
	secs := int(e.At / time.Second)
	line := fmt.Sprintf("%d:%02d %-8s %s", secs/60, secs%60, e.Kind, e.Question)
	switch e.Kind {
	case EventWrong, EventCorrect:
		line += fmt.Sprintf("  %q -> %s", e.Input, e.Command)
	}
	if e.Points != 0 {
		line += fmt.Sprintf("  %+d", e.Points)
	}
	return line
}

// record appends an event stamped with the current game time.
func (s *Session) record(e Event) {
	e.At = s.opts.Duration - s.timeLeft
	if len(s.events) == maxEvents {
		s.events = append(s.events[:0], s.events[1:]...)
	}
	s.events = append(s.events, e)
}

// Events returns the journal of the current game, oldest first.
func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
