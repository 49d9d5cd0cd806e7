// Package counter holds the state engines behind the statekit pages: a plain
// observable value, a reducer-driven counter and an interval counter that
// advances on a scheduler. None of them touch the terminal; owners subscribe
// to changes and perform side effects themselves.
package counter

import (
	"time"

	"github.com/tinytelemetry/statekit/internal/model"
)

// Scheduler runs fn every d on the owner's event loop until stop is called.
// Once stop returns, fn must never run again, including firings that were
// already in flight. Calling stop more than once is a no-op.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// Interval is a count that advances once per tick while active.
//
// Interval is NOT thread-safe. Every method, and every callback the
// Scheduler delivers, must run on the same event loop.
type Interval struct {
	sched Scheduler
	every time.Duration

	active bool
	count  int64
	stop   func()
	closed bool

	listeners *listeners[model.TimerState]
}

// NewInterval creates an inactive counter at zero. A non-positive every
// falls back to model.DefaultTickInterval.
func NewInterval(s Scheduler, every time.Duration) *Interval {
	if every <= 0 {
		every = model.DefaultTickInterval
	}
	return &Interval{
		sched:     s,
		every:     every,
		listeners: newListeners[model.TimerState](),
	}
}

// Toggle flips the run flag. Activating registers exactly one recurring
// schedule; deactivating stops it before Toggle returns.
func (c *Interval) Toggle() {
	if c.closed {
		return
	}
	if c.active {
		c.stop()
		c.stop = nil
		c.active = false
	} else {
		c.active = true
		c.stop = c.sched.Every(c.every, c.tick)
	}
	c.listeners.notify(c.State())
}

// tick is only ever invoked by the scheduler.
func (c *Interval) tick() {
	c.count++
	c.listeners.notify(c.State())
}

// Active returns the last committed run flag. After Close it keeps its
// final value even though the counter no longer advances.
func (c *Interval) Active() bool { return c.active }

// Count returns the latest committed count.
func (c *Interval) Count() int64 { return c.count }

// Every returns the tick interval.
func (c *Interval) Every() time.Duration { return c.every }

// State returns a snapshot of the counter.
func (c *Interval) State() model.TimerState {
	return model.TimerState{Active: c.active, Count: c.count}
}

// Subscribe registers fn to be called after every toggle and tick.
func (c *Interval) Subscribe(fn func(model.TimerState)) (unsubscribe func()) {
	return c.listeners.add(fn)
}

// Close cancels any outstanding schedule and drops all subscribers.
// The counter keeps its last state but never changes again.
func (c *Interval) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.listeners.clear()
}
