package gesture

import "fmt"

// TouchState is the tri-state flag describing who, if anyone, owns the touch
// stream. It is conceptually owned by the surrounding input pipeline: pass
// one instance by pointer into the manifold and into whatever else watches
// the stream.
//
// Invariants: exactly one mode at a time; the manifold marks detecting on
// the first gesture-started notification of a pass; clearing after a
// completion or cancellation is the host's job. All access happens on the
// single processing context, so there is no locking.
//
// Typical host driving: ClaimElsewhere on the first down of a stream (the
// host owns the touch until detection claims it), Clear once the stream
// ends or a completion callback arrives. On a cancellation callback demote
// back to ClaimElsewhere, not Clear: the finger stream is still live, and a
// later-starting matcher may yet claim it. The manifold itself only promotes
// claimed to detecting.
type TouchState struct {
	mode touchMode
}

type touchMode int

const (
	// touchClear: nothing owns the stream.
	touchClear touchMode = iota
	// touchClaimed: something outside gesture detection consumed the stream.
	touchClaimed
	// touchDetecting: at least one matcher is mid-pattern.
	touchDetecting
)

// IsClear reports that no matcher is mid-pattern and nothing external has
// claimed the stream.
func (s *TouchState) IsClear() bool { return s.mode == touchClear }

// IsGestureDetecting reports that a gesture pass is underway: true from the
// first started transition until Clear.
func (s *TouchState) IsGestureDetecting() bool { return s.mode == touchDetecting }

// StartGestureDetecting marks the stream as mid-gesture.
func (s *TouchState) StartGestureDetecting() { s.mode = touchDetecting }

// ClaimElsewhere marks the stream as consumed outside gesture detection.
func (s *TouchState) ClaimElsewhere() { s.mode = touchClaimed }

// Clear releases the stream.
func (s *TouchState) Clear() { s.mode = touchClear }

func (s *TouchState) String() string {
	switch s.mode {
	case touchClear:
		return "clear"
	case touchClaimed:
		return "claimed-elsewhere"
	case touchDetecting:
		return "detecting"
	}
	return fmt.Sprintf("touch-state(%d)", int(s.mode))
}
