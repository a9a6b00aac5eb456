// Package gesture turns a stream of raw pointer-motion samples into discrete
// named gestures: taps, holds, directional swipes and their multi-finger
// variants.
//
// Many independent matchers run against the same stream. A Manifold owns the
// matcher roster, fans each sample out in a fixed priority order, arbitrates
// the first completed match, and sequences listener callbacks.
//
// All sample dispatch is single-threaded: the caller feeds samples from one
// processing context (a Queue, a bubbletea update loop, whatever) and matcher
// timers re-enter that same context through a Delayer. Nothing in this
// package takes a lock.
package gesture
