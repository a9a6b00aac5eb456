package gesture

import (
	"fmt"
	"time"
)

// secondFingerMultiTap recognizes one finger held down while a second finger
// taps N times. It carries the same identity as the equivalent single-finger
// multi-tap: it is an alternate way of producing it.
type secondFingerMultiTap struct {
	noHooks
	matcher

	targetTaps    int
	completedTaps int
	second        Point
	haveSecond    bool
	lastUp        time.Duration
}

func newSecondFingerMultiTap(t Timings, taps int, id ID, d Delayer, n StateChange) *secondFingerMultiTap {
	m := &secondFingerMultiTap{targetTaps: taps}
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *secondFingerMultiTap) Description() string {
	return fmt.Sprintf("%s (second finger): %s taps=%d/%d", m.id, m.state, m.completedTaps, m.targetTaps)
}

func (m *secondFingerMultiTap) onPointerDown(ev, raw *Sample, flags uint32) {
	if ev.PointerCount() != 2 {
		m.cancelGesture(ev, raw, flags)
		return
	}
	p := ev.Pointers[1]
	if m.haveSecond {
		if ev.Time-m.lastUp > m.timings.DoubleTapTimeout || p.Dist(m.second) > m.timings.DoubleTapSlop {
			m.cancelGesture(ev, raw, flags)
			return
		}
	}
	m.second = p
	m.haveSecond = true
	if m.completedTaps == m.targetTaps-1 {
		m.startGesture(ev, raw, flags)
	}
	m.cancelAfter(m.timings.TapTimeout, ev, raw, flags)
}

func (m *secondFingerMultiTap) onPointerUp(ev, raw *Sample, flags uint32) {
	if !m.haveSecond || ev.PointerCount() != 2 {
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.completedTaps++
	m.lastUp = ev.Time
	if m.completedTaps == m.targetTaps {
		m.completeGesture(ev, raw, flags)
		return
	}
	m.cancelAfter(m.timings.DoubleTapTimeout, ev, raw, flags)
}

func (m *secondFingerMultiTap) onMove(ev, raw *Sample, flags uint32) {
	if m.haveSecond && ev.PointerCount() == 2 && ev.Pointers[1].Dist(m.second) > m.timings.TouchSlop {
		m.cancelGesture(ev, raw, flags)
	}
}

func (m *secondFingerMultiTap) onUp(ev, raw *Sample, flags uint32) {
	// The base finger lifted before the taps finished.
	m.cancelGesture(ev, raw, flags)
}

func (m *secondFingerMultiTap) onReset() {
	m.completedTaps = 0
	m.second = Point{}
	m.haveSecond = false
	m.lastUp = 0
}
