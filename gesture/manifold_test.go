package gesture

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Host-side plumbing: listener + touch-state driving
// ---------------------------------------------------------------------------

// testListener plays the surrounding pipeline: it records callbacks and
// releases the shared touch state when a pass ends, the way a host does.
type testListener struct {
	state *TouchState

	started    int
	completed  []Event
	cancelled  int
	doubleTap  int
	doubleHold int
}

func (l *testListener) OnGestureStarted() bool { l.started++; return true }

func (l *testListener) OnGestureCompleted(e Event) bool {
	l.completed = append(l.completed, e)
	l.state.Clear()
	return true
}

func (l *testListener) OnGestureCancelled(_, _ *Sample, _ uint32) bool {
	l.cancelled++
	// The stream is still live; hand it back rather than clearing.
	l.state.ClaimElsewhere()
	return true
}

func (l *testListener) OnDoubleTap(_, _ *Sample, _ uint32) bool {
	l.doubleTap++
	l.state.Clear()
	return true
}

func (l *testListener) OnDoubleTapAndHold(_, _ *Sample, _ uint32) bool {
	l.doubleHold++
	l.state.Clear()
	return true
}

func newTestManifold() (*Manifold, *testListener, *TouchState, *ManualDelayer) {
	st := &TouchState{}
	l := &testListener{state: st}
	d := &ManualDelayer{}
	m := NewManifold(DefaultTimings(), d, l, st)
	return m, l, st, d
}

// runStream advances virtual time to each sample, dispatches it, and claims
// the stream on the host's behalf after a fresh down.
func runStream(m *Manifold, st *TouchState, d *ManualDelayer, samples []Sample) []bool {
	consumed := make([]bool, 0, len(samples))
	for i := range samples {
		s := &samples[i]
		d.Advance(s.Time)
		c := m.OnSample(s, s, 0)
		consumed = append(consumed, c)
		if s.Action == ActionDown && !c && st.IsClear() {
			st.ClaimElsewhere()
		}
	}
	return consumed
}

func assertRosterIdle(t *testing.T, m *Manifold) {
	t.Helper()
	for i, g := range m.Roster() {
		if g.State() != StateIdle {
			t.Fatalf("roster[%d] (%s) state=%s, want idle", i, g.ID(), g.State())
		}
	}
}

func doubleTapStream() []Sample {
	return []Sample{
		down(0, Point{10, 10}),
		up(50, Point{10, 10}),
		down(150, Point{10, 10}),
		up(180, Point{10, 10}),
	}
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func TestManifoldClearResetsEverything(t *testing.T) {
	m, _, st, d := newTestManifold()
	runStream(m, st, d, []Sample{down(0, Point{10, 10}), move(20, Point{40, 10})})

	m.Clear()
	st.Clear()
	assertRosterIdle(t, m)
	if !st.IsClear() {
		t.Fatal("touch state should be clear after explicit reset")
	}
	// Nothing may fire later out of the cleared pass.
	d.Advance(10 * time.Second)
	assertRosterIdle(t, m)
}

func TestManifoldDoubleTapDedicatedCallback(t *testing.T) {
	m, l, st, d := newTestManifold()
	runStream(m, st, d, doubleTapStream())

	if l.doubleTap != 1 {
		t.Fatalf("doubleTap callbacks=%d, want 1", l.doubleTap)
	}
	if len(l.completed) != 0 {
		t.Fatalf("generic completed=%v, want none", l.completed)
	}
	// Double tap announces no start unless the service owns it.
	if l.started != 0 {
		t.Fatalf("started callbacks=%d, want 0", l.started)
	}
	assertRosterIdle(t, m)
}

func TestManifoldDoubleTapServiceHandled(t *testing.T) {
	m, l, st, d := newTestManifold()
	m.SetServiceHandlesDoubleTap(true)
	runStream(m, st, d, doubleTapStream())

	if l.doubleTap != 0 {
		t.Fatalf("doubleTap callbacks=%d, want 0 in service-handled mode", l.doubleTap)
	}
	if len(l.completed) != 1 || l.completed[0].ID != DoubleTap {
		t.Fatalf("completed=%v, want exactly [double-tap]", l.completed)
	}
	if l.started != 1 {
		t.Fatalf("started callbacks=%d, want 1", l.started)
	}
}

func TestManifoldDoubleTapAndHoldTimerCompletion(t *testing.T) {
	m, l, st, d := newTestManifold()
	runStream(m, st, d, []Sample{
		down(0, Point{10, 10}),
		up(50, Point{10, 10}),
		down(150, Point{10, 10}),
	})
	// Completion is timer-driven while the finger holds.
	d.Advance(at(150) + DefaultTimings().HoldDelay)

	if l.doubleHold != 1 {
		t.Fatalf("doubleTapAndHold callbacks=%d, want 1", l.doubleHold)
	}
	if len(l.completed) != 0 || l.doubleTap != 0 {
		t.Fatalf("unexpected extra callbacks: completed=%v doubleTap=%d", l.completed, l.doubleTap)
	}
	// The deferred dispatch must still end the pass.
	assertRosterIdle(t, m)
}

func TestManifoldSwipeCompletes(t *testing.T) {
	m, l, st, d := newTestManifold()
	consumed := runStream(m, st, d, []Sample{
		down(0, Point{10, 10}),
		move(20, Point{80, 10}),
		move(40, Point{160, 10}),
		up(60, Point{200, 10}),
	})

	if len(l.completed) != 1 || l.completed[0].ID != SwipeRight {
		t.Fatalf("completed=%v, want exactly [swipe-right]", l.completed)
	}
	if l.started != 1 {
		t.Fatalf("started callbacks=%d, want 1", l.started)
	}
	if l.cancelled != 0 {
		t.Fatalf("cancelled callbacks=%d, want 0", l.cancelled)
	}
	if !consumed[len(consumed)-1] {
		t.Fatal("completing sample should be consumed")
	}
	assertRosterIdle(t, m)
}

func TestManifoldConsumptionFallThrough(t *testing.T) {
	m, _, st, d := newTestManifold()
	consumed := runStream(m, st, d, []Sample{
		down(0, Point{10, 10}),
		move(10, Point{12, 10}), // under every threshold; nothing started
	})
	if consumed[0] || consumed[1] {
		t.Fatalf("consumed=%v, want all false while nothing is started", consumed)
	}

	// Once a matcher starts, in-progress samples stop falling through.
	consumed = runStream(m, st, d, []Sample{
		move(30, Point{80, 10}),
		move(50, Point{120, 10}),
	})
	if !consumed[0] || !consumed[1] {
		t.Fatalf("consumed=%v, want all true once a swipe started", consumed)
	}
}

func TestManifoldDropsNonDownWhileClear(t *testing.T) {
	m, l, st, d := newTestManifold()

	s := cancelAt(0, Point{10, 10})
	if m.OnSample(&s, &s, 0) {
		t.Fatal("cancel while clear should not be consumed")
	}
	if l.started+l.cancelled+l.doubleTap+l.doubleHold+len(l.completed) != 0 {
		t.Fatal("cancel while clear must produce zero callbacks")
	}
	assertRosterIdle(t, m)
	if d.Pending() != 0 {
		t.Fatalf("pending timers=%d, want 0", d.Pending())
	}
	if !st.IsClear() {
		t.Fatal("touch state should stay clear")
	}
}

func TestManifoldMultiFingerToggle(t *testing.T) {
	m, l, st, d := newTestManifold()

	baseLen := len(m.Roster())
	twoFingerDouble := func(start int) []Sample {
		a, b := Point{50, 100}, Point{150, 100}
		var s []Sample
		s = append(s, twoFingerTap(start, a, b)...)
		s = append(s, twoFingerTap(start+150, a, b)...)
		return s
	}

	// Disabled: the stream matches nothing.
	runStream(m, st, d, twoFingerDouble(0))
	st.Clear()
	m.Clear()
	if len(l.completed) != 0 {
		t.Fatalf("completed=%v, want none while multi-finger disabled", l.completed)
	}

	m.SetMultiFingerGesturesEnabled(true)
	if got := len(m.Roster()); got <= baseLen {
		t.Fatalf("roster=%d matchers, want more than %d after enabling", got, baseLen)
	}
	runStream(m, st, d, twoFingerDouble(1000))
	// Multi-finger taps complete only after the straggling-tap window closes.
	d.Advance(at(1200) + DefaultTimings().DoubleTapTimeout)
	if len(l.completed) != 1 || l.completed[0].ID != TwoFingerDoubleTap {
		t.Fatalf("completed=%v, want exactly [two-finger-double-tap]", l.completed)
	}

	// Disabling while idle removes the set without disturbing the rest.
	m.SetMultiFingerGesturesEnabled(false)
	if got := len(m.Roster()); got != baseLen {
		t.Fatalf("roster=%d matchers, want %d after disabling", got, baseLen)
	}
	assertRosterIdle(t, m)
}

func TestManifoldMultiFingerDisableResetsRemovedMatchers(t *testing.T) {
	m, _, st, d := newTestManifold()
	m.SetMultiFingerGesturesEnabled(true)

	// Park a multi-finger matcher with a pending hold timer.
	a, b := Point{50, 100}, Point{150, 100}
	var s []Sample
	s = append(s, twoFingerTap(0, a, b)...)
	s = append(s, down(150, a), ptrDown(160, a, b))
	runStream(m, st, d, s)

	m.SetMultiFingerGesturesEnabled(false)
	st.Clear()
	// The removed matcher's timer must not fire against a later pass.
	d.Advance(10 * time.Second)
	for _, g := range m.multi {
		if g.State() != StateIdle {
			t.Fatalf("removed matcher %s state=%s, want idle", g.ID(), g.State())
		}
	}
}

func TestManifoldDisplayIDThreadsThrough(t *testing.T) {
	m, l, st, d := newTestManifold()
	stream := []Sample{
		down(0, Point{10, 10}),
		move(20, Point{80, 10}),
		up(40, Point{160, 10}),
	}
	for i := range stream {
		stream[i].DisplayID = 3
	}
	runStream(m, st, d, stream)
	if len(l.completed) != 1 || l.completed[0].DisplayID != 3 {
		t.Fatalf("completed=%v, want display id 3", l.completed)
	}
}

// ---------------------------------------------------------------------------
// Arbitration with scripted matchers
// ---------------------------------------------------------------------------

type scriptedMatcher struct {
	noHooks
	matcher
	startOnDown  bool
	completeOnUp bool
	cancelOnUp   bool
}

func newScripted(id ID, d Delayer, n StateChange, startOnDown, completeOnUp, cancelOnUp bool) *scriptedMatcher {
	s := &scriptedMatcher{startOnDown: startOnDown, completeOnUp: completeOnUp, cancelOnUp: cancelOnUp}
	s.matcher = newMatcher(id, DefaultTimings(), d, n, s)
	return s
}

func (s *scriptedMatcher) onDown(ev, raw *Sample, flags uint32) {
	if s.startOnDown {
		s.startGesture(ev, raw, flags)
	}
}

func (s *scriptedMatcher) onUp(ev, raw *Sample, flags uint32) {
	switch {
	case s.completeOnUp:
		s.completeGesture(ev, raw, flags)
	case s.cancelOnUp:
		s.cancelGesture(ev, raw, flags)
	}
}

func TestManifoldFirstRegisteredWinsTie(t *testing.T) {
	m, l, st, d := newTestManifold()
	// Both would complete on the same up; registration order must decide.
	a := newScripted(SwipeLeft, d, m.onStateChanged, true, true, false)
	b := newScripted(SwipeRight, d, m.onStateChanged, true, true, false)
	m.base = []Matcher{a, b}
	m.multi = nil
	m.rebuildRoster()

	runStream(m, st, d, []Sample{down(0, Point{10, 10}), up(30, Point{10, 10})})

	if len(l.completed) != 1 || l.completed[0].ID != SwipeLeft {
		t.Fatalf("completed=%v, want exactly [swipe-left]", l.completed)
	}
	// The loser was reset without emitting its own completion.
	if b.State() != StateIdle {
		t.Fatalf("loser state=%s, want idle", b.State())
	}
}

func TestManifoldCancellationWithheldWhileSiblingStarted(t *testing.T) {
	m, l, st, d := newTestManifold()
	a := newScripted(SwipeLeft, d, m.onStateChanged, false, false, true)
	b := newScripted(SwipeRight, d, m.onStateChanged, true, true, false)
	m.base = []Matcher{a, b}
	m.multi = nil
	m.rebuildRoster()

	runStream(m, st, d, []Sample{down(0, Point{10, 10}), up(30, Point{10, 10})})

	// a cancelled on the up, but b was still started and went on to win;
	// the cancellation must never have reached the listener.
	if l.cancelled != 0 {
		t.Fatalf("cancelled callbacks=%d, want 0", l.cancelled)
	}
	if len(l.completed) != 1 || l.completed[0].ID != SwipeRight {
		t.Fatalf("completed=%v, want exactly [swipe-right]", l.completed)
	}
}

func TestManifoldCancellationForwardedWhenLastStartedDies(t *testing.T) {
	m, l, st, d := newTestManifold()
	a := newScripted(SwipeLeft, d, m.onStateChanged, true, false, true)
	m.base = []Matcher{a}
	m.multi = nil
	m.rebuildRoster()

	runStream(m, st, d, []Sample{down(0, Point{10, 10}), up(30, Point{10, 10})})

	if l.cancelled != 1 {
		t.Fatalf("cancelled callbacks=%d, want 1", l.cancelled)
	}
	if len(l.completed) != 0 {
		t.Fatalf("completed=%v, want none", l.completed)
	}
}
