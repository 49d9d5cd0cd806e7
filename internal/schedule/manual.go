// Package schedule provides the tick sources that drive counter.Interval:
// a virtual clock for tests, a Bubble Tea command source for the TUI and a
// single-goroutine event loop for headless runs.
package schedule

import (
	"sort"
	"time"
)

// Manual is a virtual clock. Nothing fires until Advance is called, and
// callbacks run on the caller's goroutine.
type Manual struct {
	now     time.Duration
	nextID  uint64
	entries map[uint64]*manualEntry
}

type manualEntry struct {
	id    uint64
	every time.Duration
	due   time.Duration
	fn    func()
}

// NewManual creates a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{entries: make(map[uint64]*manualEntry)}
}

// Every registers fn to fire each d of virtual time. It panics if d is not
// positive, as time.NewTicker does.
func (m *Manual) Every(d time.Duration, fn func()) func() {
	if d <= 0 {
		panic("schedule: non-positive interval")
	}
	id := m.nextID
	m.nextID++
	m.entries[id] = &manualEntry{id: id, every: d, due: m.now + d, fn: fn}
	return func() { delete(m.entries, id) }
}

// Advance moves virtual time forward by d, firing every entry that comes due
// in deadline order. Entries due at the same instant fire in registration
// order. An entry stopped by an earlier callback does not fire.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.due
		e.due += e.every
		e.fn()
	}
	m.now = target
}

func (m *Manual) nextDue(limit time.Duration) *manualEntry {
	due := make([]*manualEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.due <= limit {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of live schedules.
func (m *Manual) Pending() int { return len(m.entries) }
