package gesture

import (
	"fmt"
	"math"
	"time"
)

// ---------------------------------------------------------------------------
// Touch samples
// ---------------------------------------------------------------------------

// Action classifies one touch sample.
type Action int

const (
	// ActionDown is the first pointer landing on a clear screen.
	ActionDown Action = iota
	// ActionMove is any pointer moving.
	ActionMove
	// ActionUp is the last pointer lifting.
	ActionUp
	// ActionCancel aborts the current stream.
	ActionCancel
	// ActionPointerDown is an additional pointer landing.
	ActionPointerDown
	// ActionPointerUp is a non-final pointer lifting.
	ActionPointerUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionPointerUp:
		return "pointer-up"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Point is a screen coordinate in pixels.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Sample is one immutable touch sample. Time is an offset from the start of
// the stream's timebase (monotonic, non-decreasing across a stream), not
// wall-clock time, so streams can be replayed under virtual time.
//
// Samples are read-only to this package: callers must not mutate a sample
// after handing it to a matcher or manifold.
type Sample struct {
	Action    Action
	Pointers  []Point
	Time      time.Duration
	DisplayID int
}

// PointerCount returns the number of pointers in the sample.
func (s *Sample) PointerCount() int { return len(s.Pointers) }

// Primary returns the first pointer's location, or the zero point when the
// sample carries no pointers.
func (s *Sample) Primary() Point {
	if len(s.Pointers) == 0 {
		return Point{}
	}
	return s.Pointers[0]
}

func (s *Sample) String() string {
	return fmt.Sprintf("%s n=%d t=%s", s.Action, len(s.Pointers), s.Time)
}
