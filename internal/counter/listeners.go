package counter

// listeners is an ordered set of change callbacks. Removal by the returned
// func is safe from inside a notification.
type listeners[T any] struct {
	next  int
	order []int
	fns   map[int]func(T)
}

func newListeners[T any]() *listeners[T] {
	return &listeners[T]{fns: make(map[int]func(T))}
}

func (l *listeners[T]) add(fn func(T)) func() {
	id := l.next
	l.next++
	l.fns[id] = fn
	l.order = append(l.order, id)
	return func() {
		if _, ok := l.fns[id]; !ok {
			return
		}
		delete(l.fns, id)
		for i, v := range l.order {
			if v == id {
				l.order = append(l.order[:i:i], l.order[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners[T]) notify(v T) {
	// Snapshot so callbacks may subscribe or unsubscribe while we iterate.
	ids := append([]int(nil), l.order...)
	for _, id := range ids {
		if fn, ok := l.fns[id]; ok {
			fn(v)
		}
	}
}

func (l *listeners[T]) clear() {
	l.order = nil
	l.fns = make(map[int]func(T))
}

func (l *listeners[T]) len() int { return len(l.order) }
