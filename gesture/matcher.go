package gesture

import (
	"fmt"
	"time"
)

// StateChange is invoked synchronously on every matcher transition, before
// the sample that caused it returns from Consume (or from within a timer
// callback for deferred transitions).
type StateChange func(id ID, state State, ev, raw *Sample, flags uint32)

// Matcher tracks one stream's progress toward one specific gesture.
//
// Samples for a stream must arrive in non-decreasing timestamp order,
// starting with a down action. A sample that invalidates the pattern drives
// exactly one transition to StateCanceled; the matcher then stays quiet
// until Reset.
type Matcher interface {
	// ID is the gesture this matcher recognizes.
	ID() ID
	// State is the current lifecycle state.
	State() State
	// Consume feeds one sample. ev is the transformed event, raw the
	// untransformed copy; flags are opaque policy bits echoed through
	// notifications.
	Consume(ev, raw *Sample, flags uint32)
	// Reset forces StateIdle and disarms any pending timer. Idempotent.
	Reset()
	// Description renders the matcher for debug logs.
	Description() string
}

// hooks routes per-action handling to a matcher variant. The base matcher
// owns dispatch, transitions and timers; variants implement only the actions
// their pattern cares about.
type hooks interface {
	onDown(ev, raw *Sample, flags uint32)
	onMove(ev, raw *Sample, flags uint32)
	onUp(ev, raw *Sample, flags uint32)
	onPointerDown(ev, raw *Sample, flags uint32)
	onPointerUp(ev, raw *Sample, flags uint32)
	onReset()
}

// noHooks supplies no-op defaults so variants only spell out the actions
// they react to.
type noHooks struct{}

func (noHooks) onDown(_, _ *Sample, _ uint32)        {}
func (noHooks) onMove(_, _ *Sample, _ uint32)        {}
func (noHooks) onUp(_, _ *Sample, _ uint32)          {}
func (noHooks) onPointerDown(_, _ *Sample, _ uint32) {}
func (noHooks) onPointerUp(_, _ *Sample, _ uint32)   {}
func (noHooks) onReset()                             {}

// matcher is the state shared by every variant: identity, lifecycle state,
// and the single pending deferred transition.
type matcher struct {
	id      ID
	state   State
	timings Timings
	delayer Delayer
	notify  StateChange
	hooks   hooks

	// disarm stops the pending deferred transition; gen invalidates a
	// callback that already left the timer and is sitting in the queue.
	disarm func()
	gen    int
}

func newMatcher(id ID, t Timings, d Delayer, n StateChange, h hooks) matcher {
	return matcher{id: id, timings: t, delayer: d, notify: n, hooks: h}
}

func (m *matcher) ID() ID       { return m.id }
func (m *matcher) State() State { return m.state }

func (m *matcher) Description() string {
	return fmt.Sprintf("%s: %s", m.id, m.state)
}

// Consume dispatches one sample to the variant hooks. Canceled matchers
// ignore everything until Reset.
func (m *matcher) Consume(ev, raw *Sample, flags uint32) {
	if m.state == StateCanceled {
		return
	}
	switch ev.Action {
	case ActionDown:
		m.hooks.onDown(ev, raw, flags)
	case ActionMove:
		m.hooks.onMove(ev, raw, flags)
	case ActionUp:
		m.hooks.onUp(ev, raw, flags)
	case ActionPointerDown:
		m.hooks.onPointerDown(ev, raw, flags)
	case ActionPointerUp:
		m.hooks.onPointerUp(ev, raw, flags)
	case ActionCancel:
		m.cancelGesture(ev, raw, flags)
	}
}

// Reset is silent: it never raises a notification. Disarming the timer and
// clearing state happen in one step so a stale timer cannot fire against a
// later pass.
func (m *matcher) Reset() {
	m.disarmTransition()
	m.state = StateIdle
	m.hooks.onReset()
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func (m *matcher) setState(s State, ev, raw *Sample, flags uint32) {
	m.state = s
	if m.notify != nil {
		m.notify(m.id, s, ev, raw, flags)
	}
}

// startGesture leaves any pending deferred transition armed: a matcher that
// has started can still time out.
func (m *matcher) startGesture(ev, raw *Sample, flags uint32) {
	m.setState(StateStarted, ev, raw, flags)
}

func (m *matcher) completeGesture(ev, raw *Sample, flags uint32) {
	m.disarmTransition()
	m.setState(StateCompleted, ev, raw, flags)
}

func (m *matcher) cancelGesture(ev, raw *Sample, flags uint32) {
	if m.state == StateCanceled {
		return
	}
	m.disarmTransition()
	m.setState(StateCanceled, ev, raw, flags)
}

// completeAfter arms a deferred completion, replacing any pending deferred
// transition.
func (m *matcher) completeAfter(d time.Duration, ev, raw *Sample, flags uint32) {
	m.armTransition(d, StateCompleted, ev, raw, flags)
}

// cancelAfter arms a deferred cancellation, replacing any pending deferred
// transition.
func (m *matcher) cancelAfter(d time.Duration, ev, raw *Sample, flags uint32) {
	m.armTransition(d, StateCanceled, ev, raw, flags)
}

func (m *matcher) armTransition(d time.Duration, s State, ev, raw *Sample, flags uint32) {
	m.disarmTransition()
	gen := m.gen
	cancel := m.delayer.PostDelayed(d, func() {
		if gen != m.gen {
			// Disarmed between queueing and running.
			return
		}
		if s == StateCompleted {
			m.completeGesture(ev, raw, flags)
		} else {
			m.cancelGesture(ev, raw, flags)
		}
	})
	m.disarm = cancel
}

func (m *matcher) disarmTransition() {
	m.gen++
	if m.disarm != nil {
		m.disarm()
		m.disarm = nil
	}
}
