package counter

import "github.com/tinytelemetry/statekit/internal/model"

// Store owns a CounterState and applies actions to it through Reduce.
//
// Store is NOT thread-safe; dispatch from a single event loop.
type Store struct {
	state     model.CounterState
	listeners *listeners[model.CounterState]
}

// NewStore creates a store at the given count.
func NewStore(initial int) *Store {
	return &Store{
		state:     model.CounterState{Count: initial},
		listeners: newListeners[model.CounterState](),
	}
}

// State returns the current state.
func (s *Store) State() model.CounterState { return s.state }

// Dispatch reduces a into the store. A rejected action leaves the state as it
// was, notifies nobody and returns the reducer error.
func (s *Store) Dispatch(a Action) error {
	next, err := Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	s.listeners.notify(next)
	return nil
}

// DispatchNamed parses name and dispatches the resulting action.
func (s *Store) DispatchNamed(name string) error {
	a, err := ParseAction(name)
	if err != nil {
		return err
	}
	return s.Dispatch(a)
}

// Subscribe registers fn to be called after every accepted action.
func (s *Store) Subscribe(fn func(model.CounterState)) (unsubscribe func()) {
	return s.listeners.add(fn)
}
