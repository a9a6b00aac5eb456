package main

import (
	"fmt"
	"time"

	"github.com/touchlab-io/gesturekit/gesture"
	"github.com/touchlab-io/gesturekit/internal/config"
	"github.com/touchlab-io/gesturekit/internal/trace"
)

// replay drives one recording through a fresh manifold on virtual time. It is
// its own listener so callbacks land in the event log in dispatch order.
type replay struct {
	rec      trace.Recording
	engine   config.EngineConfig
	delayer  *gesture.ManualDelayer
	touch    *gesture.TouchState
	manifold *gesture.Manifold

	step   int
	events []string
}

func newReplay(rec trace.Recording, engine config.EngineConfig) *replay {
	r := &replay{
		rec:     rec,
		engine:  engine,
		delayer: &gesture.ManualDelayer{},
		touch:   &gesture.TouchState{},
	}
	r.manifold = gesture.NewManifold(engine.Timings(), r.delayer, r, r.touch)
	r.manifold.SetMultiFingerGesturesEnabled(engine.MultiFingerGestures)
	r.manifold.SetServiceHandlesDoubleTap(engine.ServiceHandlesDoubleTap)
	return r
}

// StepForward feeds the next sample, firing any timer due first. Reports
// false once the stream is exhausted.
func (r *replay) StepForward() bool {
	if r.step >= len(r.rec.Samples) {
		return false
	}
	s := &r.rec.Samples[r.step]
	r.delayer.Advance(s.Time)
	consumed := r.manifold.OnSample(s, s, 0)
	if s.Action == gesture.ActionDown && !consumed && r.touch.IsClear() {
		r.touch.ClaimElsewhere()
	}
	r.step++
	return true
}

// RunToEnd feeds the rest of the stream, then settles.
func (r *replay) RunToEnd() {
	for r.StepForward() {
	}
	r.Settle()
}

// Settle advances virtual time past every deferred window so hold timers and
// straggling-tap completions fire.
func (r *replay) Settle() {
	t := r.engine.Timings()
	r.delayer.Advance(r.delayer.Now() + t.DoubleTapTimeout + t.HoldDelay + time.Second)
}

// Done reports whether every sample has been fed.
func (r *replay) Done() bool { return r.step >= len(r.rec.Samples) }

// ---------------------------------------------------------------------------
// gesture.Listener
// ---------------------------------------------------------------------------

func (r *replay) OnGestureStarted() bool {
	r.events = append(r.events, "gesture started")
	return true
}

func (r *replay) OnGestureCompleted(e gesture.Event) bool {
	r.events = append(r.events, fmt.Sprintf("completed: %s (display %d)", e.ID, e.DisplayID))
	r.touch.Clear()
	return true
}

func (r *replay) OnGestureCancelled(ev, _ *gesture.Sample, _ uint32) bool {
	r.events = append(r.events, fmt.Sprintf("cancelled at %s", ev.Time))
	// Stream may still be live; hand it back rather than clearing.
	r.touch.ClaimElsewhere()
	return true
}

func (r *replay) OnDoubleTap(_, _ *gesture.Sample, _ uint32) bool {
	r.events = append(r.events, "double tap")
	r.touch.Clear()
	return true
}

func (r *replay) OnDoubleTapAndHold(_, _ *gesture.Sample, _ uint32) bool {
	r.events = append(r.events, "double tap and hold")
	r.touch.Clear()
	return true
}
