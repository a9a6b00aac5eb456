package gesture

import "fmt"

// State is the lifecycle of a single recognition attempt inside a matcher.
type State int

const (
	// StateIdle means no pattern progress; both the initial state and the
	// state after Reset.
	StateIdle State = iota
	// StateStarted means the stream plausibly matches so far.
	StateStarted
	// StateCompleted means the pattern matched.
	StateCompleted
	// StateCanceled means the stream invalidated the pattern; the matcher
	// stays quiet until the next Reset.
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarted:
		return "started"
	case StateCompleted:
		return "completed"
	case StateCanceled:
		return "canceled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
