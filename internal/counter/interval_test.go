package counter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/statekit/internal/model"
	"github.com/tinytelemetry/statekit/internal/schedule"
)

func newTestInterval() (*Interval, *schedule.Manual) {
	clock := schedule.NewManual()
	return NewInterval(clock, time.Second), clock
}

func TestInterval_InitialState(t *testing.T) {
	c, clock := newTestInterval()

	assert.False(t, c.Active())
	assert.Equal(t, int64(0), c.Count())
	assert.Equal(t, 0, clock.Pending())
}

func TestInterval_DefaultsNonPositiveInterval(t *testing.T) {
	c := NewInterval(schedule.NewManual(), 0)
	assert.Equal(t, model.DefaultTickInterval, c.Every())
}

func TestInterval_TogglePairLeavesCountAlone(t *testing.T) {
	c, clock := newTestInterval()

	c.Toggle()
	c.Toggle()

	assert.False(t, c.Active())
	assert.Equal(t, int64(0), c.Count())
	assert.Equal(t, 0, clock.Pending())
}

func TestInterval_AccumulatesTicks(t *testing.T) {
	c, clock := newTestInterval()

	c.Toggle()
	require.True(t, c.Active())
	clock.Advance(5 * time.Second)

	assert.Equal(t, int64(5), c.Count())

	// A partial interval does not tick.
	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, int64(5), c.Count())
	clock.Advance(time.Millisecond)
	assert.Equal(t, int64(6), c.Count())
}

func TestInterval_NoDriftAfterDeactivation(t *testing.T) {
	c, clock := newTestInterval()

	c.Toggle()
	clock.Advance(3 * time.Second)
	c.Toggle()
	clock.Advance(time.Hour)

	assert.Equal(t, int64(3), c.Count())
	assert.Equal(t, 0, clock.Pending())
}

func TestInterval_NoDuplicateSchedulesAcrossCycles(t *testing.T) {
	c, clock := newTestInterval()

	c.Toggle()
	clock.Advance(2 * time.Second)
	c.Toggle()
	c.Toggle()
	require.Equal(t, 1, clock.Pending())

	atReactivation := c.Count()
	clock.Advance(4 * time.Second)

	assert.Equal(t, atReactivation+4, c.Count())
}

func TestInterval_DeactivateFromSameInstantListener(t *testing.T) {
	c, clock := newTestInterval()

	// Another schedule due at the same instant stops the counter before its
	// own tick is delivered; the stopped tick must not land.
	clock.Every(time.Second, func() {
		if c.Active() {
			c.Toggle()
		}
	})
	c.Toggle()
	clock.Advance(time.Second)

	assert.False(t, c.Active())
	assert.Equal(t, int64(0), c.Count())
}

func TestInterval_SubscribeSeesTogglesAndTicks(t *testing.T) {
	c, clock := newTestInterval()

	var seen []model.TimerState
	unsubscribe := c.Subscribe(func(s model.TimerState) { seen = append(seen, s) })

	c.Toggle()
	clock.Advance(2 * time.Second)
	c.Toggle()

	assert.Equal(t, []model.TimerState{
		{Active: true, Count: 0},
		{Active: true, Count: 1},
		{Active: true, Count: 2},
		{Active: false, Count: 2},
	}, seen)

	unsubscribe()
	c.Toggle()
	assert.Len(t, seen, 4)
}

func TestInterval_CloseCancelsSchedule(t *testing.T) {
	c, clock := newTestInterval()

	calls := 0
	c.Subscribe(func(model.TimerState) { calls++ })
	c.Toggle()
	clock.Advance(time.Second)
	c.Close()
	c.Close()

	clock.Advance(10 * time.Second)
	c.Toggle()

	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, int64(1), c.Count())
	assert.True(t, c.Active(), "close keeps the last state")
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, c.listeners.len())
}
