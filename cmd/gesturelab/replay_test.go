package main

import (
	"strings"
	"testing"

	"github.com/touchlab-io/gesturekit/gesture"
	"github.com/touchlab-io/gesturekit/internal/config"
	"github.com/touchlab-io/gesturekit/internal/trace"
)

func defaultEngine() config.EngineConfig {
	t := gesture.DefaultTimings()
	return config.EngineConfig{
		TapTimeout:          t.TapTimeout,
		DoubleTapTimeout:    t.DoubleTapTimeout,
		HoldDelay:           t.HoldDelay,
		SwipeMaxDuration:    t.SwipeMaxDuration,
		TouchSlop:           t.TouchSlop,
		DoubleTapSlop:       t.DoubleTapSlop,
		SwipeThreshold:      t.SwipeThreshold,
		MultiFingerGestures: true,
	}
}

func syntheticRecording(id gesture.ID) trace.Recording {
	return trace.Recording{
		Name:    "synthetic " + id.String(),
		Gesture: id,
		Samples: trace.Synthesize(id, gesture.DefaultTimings()),
	}
}

func TestReplayRunToEnd(t *testing.T) {
	r := newReplay(syntheticRecording(gesture.SwipeRight), defaultEngine())
	r.RunToEnd()

	if !r.Done() {
		t.Fatal("replay should have consumed the full stream")
	}
	found := false
	for _, e := range r.events {
		if strings.Contains(e, "completed: swipe-right") {
			found = true
		}
	}
	if !found {
		t.Fatalf("events=%v, want a swipe-right completion", r.events)
	}
}

func TestReplayStepwise(t *testing.T) {
	r := newReplay(syntheticRecording(gesture.DoubleTap), defaultEngine())

	steps := 0
	for r.StepForward() {
		steps++
	}
	if steps != len(r.rec.Samples) {
		t.Fatalf("steps=%d, want %d", steps, len(r.rec.Samples))
	}
	found := false
	for _, e := range r.events {
		if e == "double tap" {
			found = true
		}
	}
	if !found {
		t.Fatalf("events=%v, want a double tap", r.events)
	}
	if !r.touch.IsClear() {
		t.Fatalf("touch=%s, want clear after completion", r.touch)
	}
}

func TestReplaySettleFiresHoldTimer(t *testing.T) {
	r := newReplay(syntheticRecording(gesture.TwoFingerDoubleTapAndHold), defaultEngine())
	for r.StepForward() {
	}
	if len(r.events) != 0 && strings.Contains(r.events[len(r.events)-1], "completed") {
		t.Fatalf("events=%v, completion should wait for the hold timer", r.events)
	}
	r.Settle()

	found := false
	for _, e := range r.events {
		if strings.Contains(e, "completed: two-finger-double-tap-and-hold") {
			found = true
		}
	}
	if !found {
		t.Fatalf("events=%v, want the hold completion after settling", r.events)
	}
}
