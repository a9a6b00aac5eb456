package gesture

// Event is the output of a completed recognition pass.
type Event struct {
	ID        ID
	DisplayID int
}

// Listener receives gesture notifications. Callbacks run synchronously on
// the processing context, from inside OnSample or a timer callback. The
// boolean returns communicate listener-side consumption; the manifold
// accepts any return value without altering its own control flow.
type Listener interface {
	// OnGestureStarted fires when the stream is first recognized as a
	// potential gesture.
	OnGestureStarted() bool
	// OnGestureCompleted fires when a stream is recognized as a gesture.
	OnGestureCompleted(e Event) bool
	// OnGestureCancelled fires when the stream matches no known gesture,
	// echoing the triggering sample.
	OnGestureCancelled(ev, raw *Sample, flags uint32) bool
	// OnDoubleTap fires on a completed double tap, unless service-handles-
	// double-tap mode routes it through OnGestureCompleted instead.
	OnDoubleTap(ev, raw *Sample, flags uint32) bool
	// OnDoubleTapAndHold is the equivalent for double-tap-and-hold.
	OnDoubleTapAndHold(ev, raw *Sample, flags uint32) bool
}

// Manifold coordinates the matcher roster as one unified gesture detector:
// it fans each sample out in fixed priority order, arbitrates the first
// completed match, and sequences listener callbacks.
//
// Registration order encodes specificity and is the tie-break for
// simultaneous completions; it must not be reordered.
type Manifold struct {
	base   []Matcher
	multi  []Matcher
	roster []Matcher

	listener Listener
	state    *TouchState

	multiFingerEnabled      bool
	serviceHandlesDoubleTap bool

	// passCompleted marks that a completion was dispatched during the
	// current sample, surviving the roster reset that dispatch performs.
	passCompleted bool

	// Logf, when set, receives verbose matcher traces.
	Logf func(format string, args ...any)
}

// NewManifold builds the full roster in canonical priority order. state is
// the shared touch-state capability owned by the surrounding pipeline;
// delayer is the serial processing context matchers arm their timers on.
func NewManifold(t Timings, delayer Delayer, listener Listener, state *TouchState) *Manifold {
	m := &Manifold{listener: listener, state: state}
	n := m.onStateChanged

	// Base single-finger set. Order is a correctness contract.
	m.base = []Matcher{
		newMultiTap(t, 2, DoubleTap, delayer, n),
		newMultiTapAndHold(t, 2, DoubleTapAndHold, delayer, n),
		newSecondFingerMultiTap(t, 2, DoubleTap, delayer, n),
		// One-direction swipes.
		newSwipe(t, SwipeRight, delayer, n, DirRight),
		newSwipe(t, SwipeLeft, delayer, n, DirLeft),
		newSwipe(t, SwipeUp, delayer, n, DirUp),
		newSwipe(t, SwipeDown, delayer, n, DirDown),
		// Two-direction swipes.
		newSwipe(t, SwipeLeftAndRight, delayer, n, DirLeft, DirRight),
		newSwipe(t, SwipeLeftAndUp, delayer, n, DirLeft, DirUp),
		newSwipe(t, SwipeLeftAndDown, delayer, n, DirLeft, DirDown),
		newSwipe(t, SwipeRightAndUp, delayer, n, DirRight, DirUp),
		newSwipe(t, SwipeRightAndDown, delayer, n, DirRight, DirDown),
		newSwipe(t, SwipeRightAndLeft, delayer, n, DirRight, DirLeft),
		newSwipe(t, SwipeDownAndUp, delayer, n, DirDown, DirUp),
		newSwipe(t, SwipeDownAndLeft, delayer, n, DirDown, DirLeft),
		newSwipe(t, SwipeDownAndRight, delayer, n, DirDown, DirRight),
		newSwipe(t, SwipeUpAndDown, delayer, n, DirUp, DirDown),
		newSwipe(t, SwipeUpAndLeft, delayer, n, DirUp, DirLeft),
		newSwipe(t, SwipeUpAndRight, delayer, n, DirUp, DirRight),
	}

	// Multi-finger set, appended to the roster only while enabled.
	m.multi = []Matcher{
		newMultiFingerMultiTap(t, 2, 1, TwoFingerSingleTap, delayer, n),
		newMultiFingerMultiTap(t, 2, 2, TwoFingerDoubleTap, delayer, n),
		newMultiFingerMultiTapAndHold(t, 2, 2, TwoFingerDoubleTapAndHold, delayer, n),
		newMultiFingerMultiTap(t, 2, 3, TwoFingerTripleTap, delayer, n),
		newMultiFingerMultiTap(t, 3, 1, ThreeFingerSingleTap, delayer, n),
		newMultiFingerMultiTap(t, 3, 2, ThreeFingerDoubleTap, delayer, n),
		newMultiFingerMultiTapAndHold(t, 3, 2, ThreeFingerDoubleTapAndHold, delayer, n),
		newMultiFingerMultiTap(t, 3, 3, ThreeFingerTripleTap, delayer, n),
		newMultiFingerMultiTap(t, 4, 1, FourFingerSingleTap, delayer, n),
		newMultiFingerMultiTap(t, 4, 2, FourFingerDoubleTap, delayer, n),
		newMultiFingerMultiTapAndHold(t, 4, 2, FourFingerDoubleTapAndHold, delayer, n),
		newMultiFingerMultiTap(t, 4, 3, FourFingerTripleTap, delayer, n),
		newMultiFingerSwipe(t, 2, DirDown, TwoFingerSwipeDown, delayer, n),
		newMultiFingerSwipe(t, 2, DirLeft, TwoFingerSwipeLeft, delayer, n),
		newMultiFingerSwipe(t, 2, DirRight, TwoFingerSwipeRight, delayer, n),
		newMultiFingerSwipe(t, 2, DirUp, TwoFingerSwipeUp, delayer, n),
		newMultiFingerSwipe(t, 3, DirDown, ThreeFingerSwipeDown, delayer, n),
		newMultiFingerSwipe(t, 3, DirLeft, ThreeFingerSwipeLeft, delayer, n),
		newMultiFingerSwipe(t, 3, DirRight, ThreeFingerSwipeRight, delayer, n),
		newMultiFingerSwipe(t, 3, DirUp, ThreeFingerSwipeUp, delayer, n),
		newMultiFingerSwipe(t, 4, DirDown, FourFingerSwipeDown, delayer, n),
		newMultiFingerSwipe(t, 4, DirLeft, FourFingerSwipeLeft, delayer, n),
		newMultiFingerSwipe(t, 4, DirRight, FourFingerSwipeRight, delayer, n),
		newMultiFingerSwipe(t, 4, DirUp, FourFingerSwipeUp, delayer, n),
	}

	m.rebuildRoster()
	return m
}

func (m *Manifold) rebuildRoster() {
	m.roster = m.roster[:0]
	m.roster = append(m.roster, m.base...)
	if m.multiFingerEnabled {
		m.roster = append(m.roster, m.multi...)
	}
}

// OnSample processes one touch sample. It reports whether the sample was
// consumed by gesture detection; an unconsumed sample may fall through to
// other handling.
func (m *Manifold) OnSample(ev, raw *Sample, flags uint32) bool {
	if m.state.IsClear() {
		if ev.Action != ActionDown {
			// Anything but a fresh down while clear could compromise
			// matcher state; drop it.
			m.logf("manifold: dropping %s while clear", ev)
			return false
		}
		// Validity safeguard: matchers must all be clear before a new
		// stream starts.
		m.Clear()
	}
	m.passCompleted = false
	for _, g := range m.roster {
		if g.State() == StateCanceled {
			// Cannot un-cancel; skipping is free.
			continue
		}
		g.Consume(ev, raw, flags)
		m.logf("manifold: %s", g.Description())
		if g.State() == StateCompleted || m.passCompleted {
			// First in roster order wins; dispatch already ran from the
			// state-change hook.
			m.Clear()
			return true
		}
	}
	// No completion. An in-progress multi-step pattern must not leak to
	// other handling, so consume while anything is still in play.
	for _, g := range m.roster {
		if s := g.State(); s == StateStarted || s == StateCompleted {
			return true
		}
	}
	return false
}

// Clear resets every roster matcher to idle, disarming pending timers.
func (m *Manifold) Clear() {
	for _, g := range m.roster {
		g.Reset()
	}
}

// Roster returns the active matchers in priority order, for inspection.
func (m *Manifold) Roster() []Matcher {
	out := make([]Matcher, len(m.roster))
	copy(out, m.roster)
	return out
}

// ---------------------------------------------------------------------------
// State-change dispatch
// ---------------------------------------------------------------------------

func (m *Manifold) onStateChanged(id ID, state State, ev, raw *Sample, flags uint32) {
	switch state {
	case StateStarted:
		if m.state.IsGestureDetecting() {
			return
		}
		if id == DoubleTap || id == DoubleTapAndHold {
			// The plain double-tap identities only announce a start when
			// this engine owns double-tap semantics.
			if !m.serviceHandlesDoubleTap {
				return
			}
		}
		m.listener.OnGestureStarted()
		m.state.StartGestureDetecting()
	case StateCompleted:
		m.dispatchCompleted(id, ev, raw, flags)
	case StateCanceled:
		if !m.state.IsGestureDetecting() {
			return
		}
		// Withhold the cancellation while a sibling might still complete
		// the same attempt.
		for _, g := range m.roster {
			if g.State() == StateStarted {
				return
			}
		}
		m.logf("manifold: cancelling")
		m.listener.OnGestureCancelled(ev, raw, flags)
	}
}

func (m *Manifold) dispatchCompleted(id ID, ev, raw *Sample, flags uint32) {
	switch id {
	case DoubleTap:
		if m.serviceHandlesDoubleTap {
			m.listener.OnGestureCompleted(Event{ID: id, DisplayID: ev.DisplayID})
		} else {
			m.listener.OnDoubleTap(ev, raw, flags)
		}
	case DoubleTapAndHold:
		if m.serviceHandlesDoubleTap {
			m.listener.OnGestureCompleted(Event{ID: id, DisplayID: ev.DisplayID})
		} else {
			m.listener.OnDoubleTapAndHold(ev, raw, flags)
		}
	default:
		m.listener.OnGestureCompleted(Event{ID: id, DisplayID: ev.DisplayID})
	}
	m.passCompleted = true
	// Completions decided on a sample are also cleared by OnSample; timer
	// driven completions are only cleared here. Reset is idempotent.
	m.Clear()
}

// ---------------------------------------------------------------------------
// Configuration toggles
// ---------------------------------------------------------------------------

// SetMultiFingerGesturesEnabled adds or removes the multi-finger matcher set.
// Safe to flip at any time; removal resets the removed matchers so a pending
// timer cannot fire against a later pass.
func (m *Manifold) SetMultiFingerGesturesEnabled(enabled bool) {
	if m.multiFingerEnabled == enabled {
		return
	}
	m.multiFingerEnabled = enabled
	if !enabled {
		for _, g := range m.multi {
			g.Reset()
		}
	}
	m.rebuildRoster()
}

// MultiFingerGesturesEnabled reports whether the multi-finger set is active.
func (m *Manifold) MultiFingerGesturesEnabled() bool { return m.multiFingerEnabled }

// SetServiceHandlesDoubleTap routes double-tap and double-tap-and-hold
// through generic completed events instead of their dedicated callbacks.
func (m *Manifold) SetServiceHandlesDoubleTap(enabled bool) {
	m.serviceHandlesDoubleTap = enabled
}

// ServiceHandlesDoubleTap reports the current double-tap routing.
func (m *Manifold) ServiceHandlesDoubleTap() bool { return m.serviceHandlesDoubleTap }

func (m *Manifold) logf(format string, args ...any) {
	if m.Logf != nil {
		m.Logf(format, args...)
	}
}
