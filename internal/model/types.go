package model

// TimerState is the observable snapshot of an interval counter.
// Count only advances while Active is true.
type TimerState struct {
	Active bool
	Count  int64
}

// CounterState is the state reduced by counter actions. Count may go negative.
type CounterState struct {
	Count int
}

// Session records one finished active period of an interval counter.
type Session struct {
	Start int64 // count when the period began
	Ticks int64 // ticks produced during the period
}
