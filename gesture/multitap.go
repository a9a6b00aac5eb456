package gesture

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// Single-finger multi-tap family
// ---------------------------------------------------------------------------

// multiTap recognizes N taps of one finger in roughly the same place.
// Each tap must lift within TapTimeout, successive taps must land within
// DoubleTapTimeout of the previous lift and within DoubleTapSlop of the
// previous down.
type multiTap struct {
	noHooks
	matcher

	targetTaps    int
	completedTaps int
	base          Point // down location of the current tap
	lastUp        time.Duration
}

func newMultiTap(t Timings, taps int, id ID, d Delayer, n StateChange) *multiTap {
	m := &multiTap{targetTaps: taps}
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *multiTap) Description() string {
	return fmt.Sprintf("%s: %s taps=%d/%d", m.id, m.state, m.completedTaps, m.targetTaps)
}

func (m *multiTap) onDown(ev, raw *Sample, flags uint32) {
	if ev.PointerCount() != 1 {
		m.cancelGesture(ev, raw, flags)
		return
	}
	p := ev.Primary()
	if m.completedTaps > 0 {
		if ev.Time-m.lastUp > m.timings.DoubleTapTimeout {
			m.cancelGesture(ev, raw, flags)
			return
		}
		if p.Dist(m.base) > m.timings.DoubleTapSlop {
			m.cancelGesture(ev, raw, flags)
			return
		}
	}
	m.base = p
	if m.completedTaps == m.targetTaps-1 {
		// The final tap has landed; the stream now plausibly matches.
		m.startGesture(ev, raw, flags)
	}
	m.cancelAfter(m.timings.TapTimeout, ev, raw, flags)
}

func (m *multiTap) onMove(ev, raw *Sample, flags uint32) {
	if ev.Primary().Dist(m.base) > m.timings.TouchSlop {
		m.cancelGesture(ev, raw, flags)
	}
}

func (m *multiTap) onUp(ev, raw *Sample, flags uint32) {
	m.completedTaps++
	m.lastUp = ev.Time
	if m.completedTaps == m.targetTaps {
		m.completeGesture(ev, raw, flags)
		return
	}
	m.cancelAfter(m.timings.DoubleTapTimeout, ev, raw, flags)
}

func (m *multiTap) onPointerDown(ev, raw *Sample, flags uint32) {
	// A second finger invalidates a single-finger tap.
	m.cancelGesture(ev, raw, flags)
}

func (m *multiTap) onPointerUp(ev, raw *Sample, flags uint32) {
	m.cancelGesture(ev, raw, flags)
}

func (m *multiTap) onReset() {
	m.completedTaps = 0
	m.base = Point{}
	m.lastUp = 0
}

// ---------------------------------------------------------------------------

// multiTapAndHold is a multiTap whose final tap is held down instead of
// lifted: completion fires from the hold timer, never from an up.
type multiTapAndHold struct {
	multiTap
}

func newMultiTapAndHold(t Timings, taps int, id ID, d Delayer, n StateChange) *multiTapAndHold {
	m := &multiTapAndHold{}
	m.targetTaps = taps
	m.matcher = newMatcher(id, t, d, n, m)
	return m
}

func (m *multiTapAndHold) onDown(ev, raw *Sample, flags uint32) {
	m.multiTap.onDown(ev, raw, flags)
	if m.state == StateCanceled {
		return
	}
	if m.completedTaps == m.targetTaps-1 {
		// Final tap: holding it long enough completes the gesture. This
		// replaces the tap-timeout cancellation the inner onDown armed.
		m.completeAfter(m.timings.HoldDelay, ev, raw, flags)
	}
}

func (m *multiTapAndHold) onUp(ev, raw *Sample, flags uint32) {
	if m.completedTaps == m.targetTaps-1 {
		// Lifted before the hold matured.
		m.cancelGesture(ev, raw, flags)
		return
	}
	m.multiTap.onUp(ev, raw, flags)
}
