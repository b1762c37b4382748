package search

import "fmt"

// State is a step of the search round trip.
type State int

const (
	Idle State = iota
	Composing
	Committed
	Resolving
	Seeded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Composing:
		return "composing"
	case Committed:
		return "committed"
	case Resolving:
		return "resolving"
	case Seeded:
		return "seeded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event drives a Flow.
type Event int

const (
	// Edited fires on every change to the input text.
	Edited Event = iota
	// CommitAccepted fires when a commit produced a navigation.
	CommitAccepted
	// CommitRejected fires when a commit was refused by the empty-query guard.
	CommitRejected
	// ResultsOpened fires when the results page is mounted and starts resolving.
	ResultsOpened
	// Resolved fires when the results page has its query and seeded the input.
	Resolved
	// HomeOpened fires when the landing page is mounted.
	HomeOpened
)

func (e Event) String() string {
	switch e {
	case Edited:
		return "edited"
	case CommitAccepted:
		return "commit_accepted"
	case CommitRejected:
		return "commit_rejected"
	case ResultsOpened:
		return "results_opened"
	case Resolved:
		return "resolved"
	case HomeOpened:
		return "home_opened"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Flow tracks the search round trip. The zero value starts Idle. It has no
// terminal state: Seeded returns to Composing on the next edit.
type Flow struct {
	state State
}

// NewFlow returns a Flow in the Idle state.
func NewFlow() Flow {
	return Flow{state: Idle}
}

// State returns the current state.
func (f Flow) State() State {
	return f.state
}

// Fire applies e. Events that make no sense in the current state leave it
// unchanged and report false.
func (f *Flow) Fire(e Event) bool {
	next, ok := transition(f.state, e)
	if !ok {
		return false
	}
	f.state = next
	return true
}

func transition(from State, e Event) (State, bool) {
	switch e {
	case Edited:
		switch from {
		case Idle, Composing, Seeded:
			return Composing, true
		}
	case CommitAccepted:
		switch from {
		case Composing, Seeded:
			return Committed, true
		}
	case CommitRejected:
		// The guard failing is not an error: the state stays put.
		switch from {
		case Idle, Composing, Seeded:
			return from, true
		}
	case ResultsOpened:
		// Reached by a commit, by the start location or by going back in history.
		return Resolving, true
	case Resolved:
		if from == Resolving {
			return Seeded, true
		}
	case HomeOpened:
		return Idle, true
	}
	return from, false
}
