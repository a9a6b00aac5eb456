package trace

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/touchlab-io/gesturekit/gesture"
)

// Synthesize builds a deterministic sample stream that the engine recognizes
// as id under the given tolerances. And-hold identities end with the fingers
// still down; the caller must advance time past HoldDelay to see the
// completion. Multi-finger taps likewise complete only after the
// straggling-tap window closes. Returns nil for Unknown.
func Synthesize(id gesture.ID, t gesture.Timings) []gesture.Sample {
	g := generator{t: t, origin: gesture.Point{X: 200, Y: 200}}
	switch id {
	case gesture.DoubleTap:
		return g.taps(1, 2, false)
	case gesture.DoubleTapAndHold:
		return g.taps(1, 2, true)
	case gesture.SwipeRight:
		return g.swipe(gesture.DirRight)
	case gesture.SwipeLeft:
		return g.swipe(gesture.DirLeft)
	case gesture.SwipeUp:
		return g.swipe(gesture.DirUp)
	case gesture.SwipeDown:
		return g.swipe(gesture.DirDown)
	case gesture.SwipeLeftAndRight:
		return g.swipe(gesture.DirLeft, gesture.DirRight)
	case gesture.SwipeLeftAndUp:
		return g.swipe(gesture.DirLeft, gesture.DirUp)
	case gesture.SwipeLeftAndDown:
		return g.swipe(gesture.DirLeft, gesture.DirDown)
	case gesture.SwipeRightAndUp:
		return g.swipe(gesture.DirRight, gesture.DirUp)
	case gesture.SwipeRightAndDown:
		return g.swipe(gesture.DirRight, gesture.DirDown)
	case gesture.SwipeRightAndLeft:
		return g.swipe(gesture.DirRight, gesture.DirLeft)
	case gesture.SwipeDownAndUp:
		return g.swipe(gesture.DirDown, gesture.DirUp)
	case gesture.SwipeDownAndLeft:
		return g.swipe(gesture.DirDown, gesture.DirLeft)
	case gesture.SwipeDownAndRight:
		return g.swipe(gesture.DirDown, gesture.DirRight)
	case gesture.SwipeUpAndDown:
		return g.swipe(gesture.DirUp, gesture.DirDown)
	case gesture.SwipeUpAndLeft:
		return g.swipe(gesture.DirUp, gesture.DirLeft)
	case gesture.SwipeUpAndRight:
		return g.swipe(gesture.DirUp, gesture.DirRight)
	case gesture.TwoFingerSingleTap:
		return g.taps(2, 1, false)
	case gesture.TwoFingerDoubleTap:
		return g.taps(2, 2, false)
	case gesture.TwoFingerDoubleTapAndHold:
		return g.taps(2, 2, true)
	case gesture.TwoFingerTripleTap:
		return g.taps(2, 3, false)
	case gesture.ThreeFingerSingleTap:
		return g.taps(3, 1, false)
	case gesture.ThreeFingerDoubleTap:
		return g.taps(3, 2, false)
	case gesture.ThreeFingerDoubleTapAndHold:
		return g.taps(3, 2, true)
	case gesture.ThreeFingerTripleTap:
		return g.taps(3, 3, false)
	case gesture.FourFingerSingleTap:
		return g.taps(4, 1, false)
	case gesture.FourFingerDoubleTap:
		return g.taps(4, 2, false)
	case gesture.FourFingerDoubleTapAndHold:
		return g.taps(4, 2, true)
	case gesture.FourFingerTripleTap:
		return g.taps(4, 3, false)
	case gesture.TwoFingerSwipeDown:
		return g.multiSwipe(2, gesture.DirDown)
	case gesture.TwoFingerSwipeLeft:
		return g.multiSwipe(2, gesture.DirLeft)
	case gesture.TwoFingerSwipeRight:
		return g.multiSwipe(2, gesture.DirRight)
	case gesture.TwoFingerSwipeUp:
		return g.multiSwipe(2, gesture.DirUp)
	case gesture.ThreeFingerSwipeDown:
		return g.multiSwipe(3, gesture.DirDown)
	case gesture.ThreeFingerSwipeLeft:
		return g.multiSwipe(3, gesture.DirLeft)
	case gesture.ThreeFingerSwipeRight:
		return g.multiSwipe(3, gesture.DirRight)
	case gesture.ThreeFingerSwipeUp:
		return g.multiSwipe(3, gesture.DirUp)
	case gesture.FourFingerSwipeDown:
		return g.multiSwipe(4, gesture.DirDown)
	case gesture.FourFingerSwipeLeft:
		return g.multiSwipe(4, gesture.DirLeft)
	case gesture.FourFingerSwipeRight:
		return g.multiSwipe(4, gesture.DirRight)
	case gesture.FourFingerSwipeUp:
		return g.multiSwipe(4, gesture.DirUp)
	}
	return nil
}

// SeedDefaults inserts one synthetic recording per known identity into an
// empty store. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, store *Store, t gesture.Timings) error {
	existing, err := store.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	for _, id := range gesture.IDs() {
		samples := Synthesize(id, t)
		if samples == nil {
			continue
		}
		r := Recording{
			ID:      uuid.NewString(),
			Name:    "synthetic " + id.String(),
			Gesture: id,
			Samples: samples,
		}
		if err := store.Insert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

type generator struct {
	t      gesture.Timings
	origin gesture.Point
}

// fingers returns n landing positions spread horizontally around the origin.
func (g generator) fingers(n int) []gesture.Point {
	out := make([]gesture.Point, n)
	for i := range out {
		out[i] = gesture.Point{X: g.origin.X + float64(i)*80, Y: g.origin.Y}
	}
	return out
}

// taps emits T taps of F fingers. With hold, the final tap lands and stays
// down.
func (g generator) taps(fingers, taps int, hold bool) []gesture.Sample {
	stagger := 5 * time.Millisecond
	lift := g.t.TapTimeout / 3
	gap := g.t.DoubleTapTimeout / 3
	pts := g.fingers(fingers)

	var out []gesture.Sample
	start := time.Duration(0)
	for tap := 0; tap < taps; tap++ {
		// fingers land one by one
		for n := 1; n <= fingers; n++ {
			a := gesture.ActionDown
			if n > 1 {
				a = gesture.ActionPointerDown
			}
			out = append(out, gesture.Sample{
				Action:   a,
				Pointers: clonePoints(pts[:n]),
				Time:     start + time.Duration(n-1)*stagger,
			})
		}
		if hold && tap == taps-1 {
			return out
		}
		// then lift in reverse order
		for n := fingers; n >= 1; n-- {
			a := gesture.ActionUp
			if n > 1 {
				a = gesture.ActionPointerUp
			}
			out = append(out, gesture.Sample{
				Action:   a,
				Pointers: clonePoints(pts[:n]),
				Time:     start + lift + time.Duration(fingers-n)*stagger,
			})
		}
		start = out[len(out)-1].Time + gap
	}
	return out
}

// swipe emits one finger travelling each direction leg in order.
func (g generator) swipe(dirs ...gesture.Direction) []gesture.Sample {
	step := 20 * time.Millisecond
	leg := 2 * g.t.SwipeThreshold
	const perLeg = 3

	pos := g.origin
	out := []gesture.Sample{{
		Action:   gesture.ActionDown,
		Pointers: []gesture.Point{pos},
	}}
	now := time.Duration(0)
	for _, d := range dirs {
		dx, dy := vec(d)
		for i := 0; i < perLeg; i++ {
			pos = gesture.Point{X: pos.X + dx*leg/perLeg, Y: pos.Y + dy*leg/perLeg}
			now += step
			out = append(out, gesture.Sample{
				Action:   gesture.ActionMove,
				Pointers: []gesture.Point{pos},
				Time:     now,
			})
		}
	}
	out = append(out, gesture.Sample{
		Action:   gesture.ActionUp,
		Pointers: []gesture.Point{pos},
		Time:     now + step,
	})
	return out
}

// multiSwipe emits F fingers travelling together in one direction.
func (g generator) multiSwipe(fingers int, dir gesture.Direction) []gesture.Sample {
	stagger := 5 * time.Millisecond
	step := 20 * time.Millisecond
	leg := 2 * g.t.SwipeThreshold
	const perLeg = 3

	pts := g.fingers(fingers)
	var out []gesture.Sample
	for n := 1; n <= fingers; n++ {
		a := gesture.ActionDown
		if n > 1 {
			a = gesture.ActionPointerDown
		}
		out = append(out, gesture.Sample{
			Action:   a,
			Pointers: clonePoints(pts[:n]),
			Time:     time.Duration(n-1) * stagger,
		})
	}
	now := out[len(out)-1].Time
	dx, dy := vec(dir)
	for i := 0; i < perLeg; i++ {
		for j := range pts {
			pts[j] = gesture.Point{X: pts[j].X + dx*leg/perLeg, Y: pts[j].Y + dy*leg/perLeg}
		}
		now += step
		out = append(out, gesture.Sample{
			Action:   gesture.ActionMove,
			Pointers: clonePoints(pts),
			Time:     now,
		})
	}
	for n := fingers; n >= 1; n-- {
		a := gesture.ActionUp
		if n > 1 {
			a = gesture.ActionPointerUp
		}
		now += stagger
		out = append(out, gesture.Sample{
			Action:   a,
			Pointers: clonePoints(pts[:n]),
			Time:     now,
		})
	}
	return out
}

func vec(d gesture.Direction) (dx, dy float64) {
	switch d {
	case gesture.DirRight:
		return 1, 0
	case gesture.DirLeft:
		return -1, 0
	case gesture.DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

func clonePoints(pts []gesture.Point) []gesture.Point {
	out := make([]gesture.Point, len(pts))
	copy(out, pts)
	return out
}
