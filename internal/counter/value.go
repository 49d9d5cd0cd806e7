package counter

// Value holds a piece of local state and tells subscribers when it changes.
// Setting the current value again is not a change.
//
// Value is NOT thread-safe; use it from a single event loop.
type Value[T comparable] struct {
	v         T
	listeners *listeners[T]
}

// NewValue creates a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial, listeners: newListeners[T]()}
}

// Get returns the current value.
func (s *Value[T]) Get() T { return s.v }

// Set replaces the value and notifies subscribers if it differs.
func (s *Value[T]) Set(v T) {
	if v == s.v {
		return
	}
	s.v = v
	s.listeners.notify(v)
}

// Update applies fn to the current value and stores the result.
func (s *Value[T]) Update(fn func(T) T) {
	s.Set(fn(s.v))
}

// Subscribe registers fn for change notifications.
func (s *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return s.listeners.add(fn)
}
