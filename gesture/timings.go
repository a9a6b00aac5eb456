package gesture

import "time"

// Timings are the engine-wide geometry and timing tolerances shared by every
// matcher. Distances are pixels.
type Timings struct {
	// TapTimeout is the longest a finger may stay down and still count as a
	// tap.
	TapTimeout time.Duration
	// DoubleTapTimeout is the longest gap allowed between the taps of a
	// multi-tap.
	DoubleTapTimeout time.Duration
	// HoldDelay is how long the final tap of an and-hold variant must be
	// held before the gesture completes.
	HoldDelay time.Duration
	// SwipeMaxDuration bounds a whole swipe from down to up.
	SwipeMaxDuration time.Duration
	// TouchSlop is the displacement tolerance within one tap.
	TouchSlop float64
	// DoubleTapSlop is how far apart successive taps may land.
	DoubleTapSlop float64
	// SwipeThreshold is the minimum displacement of one swipe segment.
	SwipeThreshold float64
}

// DefaultTimings mirrors common platform input tolerances.
func DefaultTimings() Timings {
	return Timings{
		TapTimeout:       100 * time.Millisecond,
		DoubleTapTimeout: 300 * time.Millisecond,
		HoldDelay:        400 * time.Millisecond,
		SwipeMaxDuration: 750 * time.Millisecond,
		TouchSlop:        8,
		DoubleTapSlop:    100,
		SwipeThreshold:   50,
	}
}
