package gesture

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// Multi-finger taps
// ---------------------------------------------------------------------------

// multiFingerMultiTap recognizes T taps of exactly F fingers. A tap counts
// when all F fingers land and the last lifts within TapTimeout; successive
// taps must follow within DoubleTapTimeout. More than F fingers, or a tap
// that never reaches F fingers, invalidates the pattern.
//
// Completion of the final tap is deferred by DoubleTapTimeout: matchers for
// different tap counts of the same finger count coexist in the roster, so a
// straggling further tap must get the chance to invalidate the shorter
// pattern before it wins.
//
// Pointer ordering is assumed stable across the samples of one stream.
type multiFingerMultiTap struct {
	noHooks
	matcher

	targetFingers int
	targetTaps    int
	completedTaps int
	touching      int     // pointers currently down
	peak          int     // most pointers seen during the current tap
	bases         []Point // down locations of the current tap
	lastUp        time.Duration
}

func newMultiFingerMultiTap(t Timings, fingers, taps int, id ID, d Delayer, n StateChange) *multiFingerMultiTap {
	m := &multiFingerMultiTap{targetFingers: fingers, targetTaps: taps}
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *multiFingerMultiTap) Description() string {
	return fmt.Sprintf("%s: %s fingers=%d taps=%d/%d", m.id, m.state, m.targetFingers, m.completedTaps, m.targetTaps)
}

func (m *multiFingerMultiTap) onDown(ev, raw *Sample, flags uint32) {
	if m.completedTaps == m.targetTaps {
		// One tap too many; a longer pattern owns this stream now.
		m.cancelGesture(ev, raw, flags)
		return
	}
	if m.completedTaps > 0 && ev.Time-m.lastUp > m.timings.DoubleTapTimeout {
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.touching = 1
	m.peak = 1
	m.bases = append(m.bases[:0], ev.Primary())
	// All fingers must land and lift before this fires.
	m.cancelAfter(m.timings.TapTimeout, ev, raw, flags)
}

func (m *multiFingerMultiTap) onPointerDown(ev, raw *Sample, flags uint32) {
	m.touching = ev.PointerCount()
	if m.touching > m.targetFingers {
		m.cancelGesture(ev, raw, flags)
		return
	}
	if m.touching > m.peak {
		m.peak = m.touching
	}
	m.bases = append(m.bases, ev.Pointers[len(ev.Pointers)-1])
	if m.touching == m.targetFingers && m.completedTaps == 0 && m.state == StateIdle {
		m.startGesture(ev, raw, flags)
	}
}

func (m *multiFingerMultiTap) onMove(ev, raw *Sample, flags uint32) {
	n := min(ev.PointerCount(), len(m.bases))
	for i := 0; i < n; i++ {
		if ev.Pointers[i].Dist(m.bases[i]) > m.timings.TouchSlop {
			m.cancelGesture(ev, raw, flags)
			return
		}
	}
}

func (m *multiFingerMultiTap) onPointerUp(ev, raw *Sample, flags uint32) {
	if m.touching > 0 {
		m.touching--
	}
}

func (m *multiFingerMultiTap) onUp(ev, raw *Sample, flags uint32) {
	if m.peak != m.targetFingers {
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.completedTaps++
	m.lastUp = ev.Time
	m.touching = 0
	m.peak = 0
	if m.completedTaps == m.targetTaps {
		m.completeAfter(m.timings.DoubleTapTimeout, ev, raw, flags)
		return
	}
	m.cancelAfter(m.timings.DoubleTapTimeout, ev, raw, flags)
}

func (m *multiFingerMultiTap) onReset() {
	m.completedTaps = 0
	m.touching = 0
	m.peak = 0
	m.bases = m.bases[:0]
	m.lastUp = 0
}

// ---------------------------------------------------------------------------

// multiFingerMultiTapAndHold holds the final tap down instead of lifting it;
// completion fires from the hold timer.
type multiFingerMultiTapAndHold struct {
	multiFingerMultiTap
}

func newMultiFingerMultiTapAndHold(t Timings, fingers, taps int, id ID, d Delayer, n StateChange) *multiFingerMultiTapAndHold {
	m := &multiFingerMultiTapAndHold{}
	m.targetFingers = fingers
	m.targetTaps = taps
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *multiFingerMultiTapAndHold) onPointerDown(ev, raw *Sample, flags uint32) {
	m.multiFingerMultiTap.onPointerDown(ev, raw, flags)
	if m.state == StateCanceled {
		return
	}
	if m.touching == m.targetFingers && m.completedTaps == m.targetTaps-1 {
		// Final tap fully landed; replaces the pending tap-timeout cancel.
		m.completeAfter(m.timings.HoldDelay, ev, raw, flags)
	}
}

func (m *multiFingerMultiTapAndHold) onPointerUp(ev, raw *Sample, flags uint32) {
	if m.completedTaps == m.targetTaps-1 {
		// A finger left the final hold early.
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.multiFingerMultiTap.onPointerUp(ev, raw, flags)
}

func (m *multiFingerMultiTapAndHold) onUp(ev, raw *Sample, flags uint32) {
	if m.completedTaps == m.targetTaps-1 {
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.multiFingerMultiTap.onUp(ev, raw, flags)
}

// ---------------------------------------------------------------------------
// Multi-finger swipes
// ---------------------------------------------------------------------------

// multiFingerSwipe recognizes exactly F fingers travelling together in one
// cardinal direction.
type multiFingerSwipe struct {
	noHooks
	matcher

	targetFingers int
	direction     Direction
	bases         []Point
	downTime      time.Duration
}

func newMultiFingerSwipe(t Timings, fingers int, dir Direction, id ID, d Delayer, n StateChange) *multiFingerSwipe {
	m := &multiFingerSwipe{targetFingers: fingers, direction: dir}
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *multiFingerSwipe) Description() string {
	return fmt.Sprintf("%s: %s fingers=%d dir=%s", m.id, m.state, m.targetFingers, m.direction)
}

func (m *multiFingerSwipe) onDown(ev, raw *Sample, flags uint32) {
	m.bases = append(m.bases[:0], ev.Primary())
	m.downTime = ev.Time
	m.cancelAfter(m.timings.SwipeMaxDuration, ev, raw, flags)
}

func (m *multiFingerSwipe) onPointerDown(ev, raw *Sample, flags uint32) {
	if ev.PointerCount() > m.targetFingers {
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.bases = append(m.bases, ev.Pointers[len(ev.Pointers)-1])
}

func (m *multiFingerSwipe) onMove(ev, raw *Sample, flags uint32) {
	if ev.PointerCount() != m.targetFingers || len(m.bases) != m.targetFingers {
		return
	}
	travelled := 0
	for i := 0; i < m.targetFingers; i++ {
		d := ev.Pointers[i].Dist(m.bases[i])
		if d < m.timings.SwipeThreshold {
			continue
		}
		if directionOf(m.bases[i], ev.Pointers[i]) != m.direction {
			m.cancelGesture(ev, raw, flags)
			return
		}
		travelled++
	}
	if travelled == m.targetFingers && m.state != StateStarted {
		m.startGesture(ev, raw, flags)
	}
}

func (m *multiFingerSwipe) onPointerUp(ev, raw *Sample, flags uint32) {
	if m.state != StateStarted {
		// A finger lifted before every finger cleared the threshold.
		m.cancelGesture(ev, raw, flags)
	}
}

func (m *multiFingerSwipe) onUp(ev, raw *Sample, flags uint32) {
	if m.state == StateStarted && ev.Time-m.downTime <= m.timings.SwipeMaxDuration {
		m.completeGesture(ev, raw, flags)
		return
	}
	m.cancelGesture(ev, raw, flags)
}

func (m *multiFingerSwipe) onReset() {
	m.bases = m.bases[:0]
	m.downTime = 0
}
