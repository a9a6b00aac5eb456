package gesture

import (
	"sort"
	"sync"
	"time"
)

// Delayer schedules a single-shot callback onto the engine's processing
// context. The returned func disarms the timer; disarming after the callback
// has already been queued is tolerated because matchers guard stale timers
// themselves (see matcher.armTransition).
type Delayer interface {
	PostDelayed(d time.Duration, f func()) (cancel func())
}

// ---------------------------------------------------------------------------
// Queue: a real serial processing context
// ---------------------------------------------------------------------------

// Queue is a serial executor backed by one goroutine. Samples posted with
// Post and timer callbacks armed with PostDelayed all run on that goroutine,
// so engine state is never mutated concurrently.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	fns    []func()
	closed bool
	done   chan struct{}
}

// NewQueue starts the processing goroutine.
func NewQueue() *Queue {
	q := &Queue{done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.fns) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.fns) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		f := q.fns[0]
		q.fns = q.fns[1:]
		q.mu.Unlock()
		f()
	}
}

// Post runs f on the processing goroutine, after everything already queued.
// Posting to a closed queue is a no-op.
func (q *Queue) Post(f func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.fns = append(q.fns, f)
	q.cond.Signal()
}

// PostDelayed arms a single-shot timer that posts f back onto the queue.
func (q *Queue) PostDelayed(d time.Duration, f func()) (cancel func()) {
	t := time.AfterFunc(d, func() { q.Post(f) })
	return func() { t.Stop() }
}

// Close drains queued work and stops the goroutine. It blocks until the
// goroutine exits; pending time.AfterFunc timers fire into the void.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
	<-q.done
}

// ---------------------------------------------------------------------------
// ManualDelayer: virtual time for tests and replay
// ---------------------------------------------------------------------------

// ManualDelayer is a Delayer driven by an explicit clock. Replays and tests
// advance it to each sample's timestamp; due callbacks fire synchronously, in
// due order, on the caller's goroutine. Not safe for concurrent use, which is
// the point.
type ManualDelayer struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// Now returns the current virtual time.
func (m *ManualDelayer) Now() time.Duration { return m.now }

// PostDelayed arms a callback due at Now()+d.
func (m *ManualDelayer) PostDelayed(d time.Duration, f func()) (cancel func()) {
	m.seq++
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: f}
	m.timers = append(m.timers, t)
	return func() { t.stopped = true }
}

// Advance moves the clock to t, firing every due callback along the way.
// Callbacks armed while advancing fire too if they fall due by t.
func (m *ManualDelayer) Advance(t time.Duration) {
	if t < m.now {
		return
	}
	for {
		next := m.nextDue(t)
		if next == nil {
			break
		}
		next.fired = true
		if next.due > m.now {
			m.now = next.due
		}
		next.fn()
	}
	m.now = t
	m.compact()
}

func (m *ManualDelayer) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.fired || t.stopped || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualDelayer) compact() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool { return m.timers[i].due < m.timers[j].due })
}

// Pending reports how many armed callbacks have not fired or been disarmed.
func (m *ManualDelayer) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
