package gesture

import (
	"fmt"
	"strings"
	"time"
)

// Direction is a cardinal swipe direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// directionOf quantizes the vector from a to b onto the dominant axis.
// Screen coordinates: y grows downward.
func directionOf(a, b Point) Direction {
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// segmentDirections reduces a pointer path to its direction segments:
// each leg of at least minLen, consecutive same directions merged.
func segmentDirections(pts []Point, minLen float64) []Direction {
	var segs []Direction
	if len(pts) == 0 {
		return segs
	}
	anchor := pts[0]
	for _, p := range pts[1:] {
		if p.Dist(anchor) < minLen {
			continue
		}
		dir := directionOf(anchor, p)
		if len(segs) == 0 || segs[len(segs)-1] != dir {
			segs = append(segs, dir)
		}
		anchor = p
	}
	return segs
}

func directionsEqual(a, b []Direction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------

// swipe recognizes one finger travelling through one or two cardinal
// directions. The direction sequence is decided on the up sample from the
// recorded path; the whole stroke must fit inside SwipeMaxDuration.
type swipe struct {
	noHooks
	matcher

	directions []Direction
	path       []Point
	downTime   time.Duration
}

func newSwipe(t Timings, id ID, d Delayer, n StateChange, dirs ...Direction) *swipe {
	m := &swipe{directions: dirs}
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *swipe) Description() string {
	names := make([]string, len(m.directions))
	for i, d := range m.directions {
		names[i] = d.String()
	}
	return fmt.Sprintf("%s: %s dirs=%s", m.id, m.state, strings.Join(names, ","))
}

func (m *swipe) onDown(ev, raw *Sample, flags uint32) {
	m.path = append(m.path[:0], ev.Primary())
	m.downTime = ev.Time
	m.cancelAfter(m.timings.SwipeMaxDuration, ev, raw, flags)
}

func (m *swipe) onMove(ev, raw *Sample, flags uint32) {
	p := ev.Primary()
	m.path = append(m.path, p)
	if m.state != StateStarted && p.Dist(m.path[0]) >= m.timings.SwipeThreshold {
		m.startGesture(ev, raw, flags)
	}
}

func (m *swipe) onUp(ev, raw *Sample, flags uint32) {
	m.path = append(m.path, ev.Primary())
	if ev.Time-m.downTime > m.timings.SwipeMaxDuration {
		m.cancelGesture(ev, raw, flags)
		return
	}
	if directionsEqual(segmentDirections(m.path, m.timings.SwipeThreshold), m.directions) {
		m.completeGesture(ev, raw, flags)
		return
	}
	m.cancelGesture(ev, raw, flags)
}

func (m *swipe) onPointerDown(ev, raw *Sample, flags uint32) {
	m.cancelGesture(ev, raw, flags)
}

func (m *swipe) onReset() {
	m.path = m.path[:0]
	m.downTime = 0
}
