package gesture

import "fmt"

// ID names one recognizable gesture. The second-finger double tap carries
// DoubleTap: it is an alternate way of producing the same identity.
type ID int

const (
	Unknown ID = iota
	DoubleTap
	DoubleTapAndHold
	SwipeRight
	SwipeLeft
	SwipeUp
	SwipeDown
	SwipeLeftAndRight
	SwipeLeftAndUp
	SwipeLeftAndDown
	SwipeRightAndUp
	SwipeRightAndDown
	SwipeRightAndLeft
	SwipeDownAndUp
	SwipeDownAndLeft
	SwipeDownAndRight
	SwipeUpAndDown
	SwipeUpAndLeft
	SwipeUpAndRight
	TwoFingerSingleTap
	TwoFingerDoubleTap
	TwoFingerDoubleTapAndHold
	TwoFingerTripleTap
	ThreeFingerSingleTap
	ThreeFingerDoubleTap
	ThreeFingerDoubleTapAndHold
	ThreeFingerTripleTap
	FourFingerSingleTap
	FourFingerDoubleTap
	FourFingerDoubleTapAndHold
	FourFingerTripleTap
	TwoFingerSwipeDown
	TwoFingerSwipeLeft
	TwoFingerSwipeRight
	TwoFingerSwipeUp
	ThreeFingerSwipeDown
	ThreeFingerSwipeLeft
	ThreeFingerSwipeRight
	ThreeFingerSwipeUp
	FourFingerSwipeDown
	FourFingerSwipeLeft
	FourFingerSwipeRight
	FourFingerSwipeUp
)

var idNames = map[ID]string{
	DoubleTap:                   "double-tap",
	DoubleTapAndHold:            "double-tap-and-hold",
	SwipeRight:                  "swipe-right",
	SwipeLeft:                   "swipe-left",
	SwipeUp:                     "swipe-up",
	SwipeDown:                   "swipe-down",
	SwipeLeftAndRight:           "swipe-left-and-right",
	SwipeLeftAndUp:              "swipe-left-and-up",
	SwipeLeftAndDown:            "swipe-left-and-down",
	SwipeRightAndUp:             "swipe-right-and-up",
	SwipeRightAndDown:           "swipe-right-and-down",
	SwipeRightAndLeft:           "swipe-right-and-left",
	SwipeDownAndUp:              "swipe-down-and-up",
	SwipeDownAndLeft:            "swipe-down-and-left",
	SwipeDownAndRight:           "swipe-down-and-right",
	SwipeUpAndDown:              "swipe-up-and-down",
	SwipeUpAndLeft:              "swipe-up-and-left",
	SwipeUpAndRight:             "swipe-up-and-right",
	TwoFingerSingleTap:          "two-finger-single-tap",
	TwoFingerDoubleTap:          "two-finger-double-tap",
	TwoFingerDoubleTapAndHold:   "two-finger-double-tap-and-hold",
	TwoFingerTripleTap:          "two-finger-triple-tap",
	ThreeFingerSingleTap:        "three-finger-single-tap",
	ThreeFingerDoubleTap:        "three-finger-double-tap",
	ThreeFingerDoubleTapAndHold: "three-finger-double-tap-and-hold",
	ThreeFingerTripleTap:        "three-finger-triple-tap",
	FourFingerSingleTap:         "four-finger-single-tap",
	FourFingerDoubleTap:         "four-finger-double-tap",
	FourFingerDoubleTapAndHold:  "four-finger-double-tap-and-hold",
	FourFingerTripleTap:         "four-finger-triple-tap",
	TwoFingerSwipeDown:          "two-finger-swipe-down",
	TwoFingerSwipeLeft:          "two-finger-swipe-left",
	TwoFingerSwipeRight:         "two-finger-swipe-right",
	TwoFingerSwipeUp:            "two-finger-swipe-up",
	ThreeFingerSwipeDown:        "three-finger-swipe-down",
	ThreeFingerSwipeLeft:        "three-finger-swipe-left",
	ThreeFingerSwipeRight:       "three-finger-swipe-right",
	ThreeFingerSwipeUp:          "three-finger-swipe-up",
	FourFingerSwipeDown:         "four-finger-swipe-down",
	FourFingerSwipeLeft:         "four-finger-swipe-left",
	FourFingerSwipeRight:        "four-finger-swipe-right",
	FourFingerSwipeUp:           "four-finger-swipe-up",
}

func (id ID) String() string {
	if n, ok := idNames[id]; ok {
		return n
	}
	return fmt.Sprintf("gesture(%d)", int(id))
}

// ParseID returns the identity with the given kebab-case name.
func ParseID(name string) (ID, bool) {
	for id, n := range idNames {
		if n == name {
			return id, true
		}
	}
	return Unknown, false
}

// IDs returns every named identity in roster priority order.
func IDs() []ID {
	out := make([]ID, 0, len(idNames))
	for id := DoubleTap; id <= FourFingerSwipeUp; id++ {
		out = append(out, id)
	}
	return out
}
