package schedule

import (
	"context"
	"time"
)

// Loop is a single-goroutine event loop. Posted tasks and schedule callbacks
// all run on the goroutine that called Run, one at a time.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	// owned by the loop goroutine
	nextID uint64
	live   map[uint64]chan struct{}
}

// NewLoop creates a loop whose task queue holds up to buffer pending tasks.
func NewLoop(buffer int) *Loop {
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
		live:  make(map[uint64]chan struct{}),
	}
}

// Run executes tasks until ctx is done, then stops every live schedule.
// It returns nil on a clean shutdown and must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			for id, stop := range l.live {
				delete(l.live, id)
				close(stop)
			}
			return nil
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It reports false if the loop has exited.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Every runs fn on the loop each d until stopped. It must be called from the
// loop goroutine, and so must the returned stop func. A firing that was
// queued before stop is discarded when it reaches the front of the queue.
//
// It panics if d is not positive, as time.NewTicker does.
func (l *Loop) Every(d time.Duration, fn func()) func() {
	if d <= 0 {
		panic("schedule: non-positive interval")
	}
	id := l.nextID
	l.nextID++
	stop := make(chan struct{})
	l.live[id] = stop

	fire := func() {
		if _, ok := l.live[id]; ok {
			fn()
		}
	}

	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case l.tasks <- fire:
				case <-stop:
					return
				case <-l.done:
					return
				}
			case <-stop:
				return
			case <-l.done:
				return
			}
		}
	}()

	return func() {
		if ch, ok := l.live[id]; ok {
			delete(l.live, id)
			close(ch)
		}
	}
}
