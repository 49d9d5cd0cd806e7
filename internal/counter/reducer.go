package counter

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tinytelemetry/statekit/internal/model"
)

// ErrUnknownAction is returned for any action the reducer does not handle.
var ErrUnknownAction = errors.New("unknown counter action")

// Action is a counter transition request. The set is closed: only Increment
// and Decrement implement it.
type Action interface {
	Name() string
	action()
}

// Increment adds one to the count.
type Increment struct{}

// Decrement subtracts one from the count.
type Decrement struct{}

func (Increment) Name() string { return "increment" }
func (Decrement) Name() string { return "decrement" }

func (Increment) action() {}
func (Decrement) action() {}

// Reduce returns the state that results from applying a to s. An action the
// reducer does not recognise yields s unchanged and an error wrapping
// ErrUnknownAction.
func Reduce(s model.CounterState, a Action) (model.CounterState, error) {
	switch a.(type) {
	case Increment:
		return model.CounterState{Count: s.Count + 1}, nil
	case Decrement:
		return model.CounterState{Count: s.Count - 1}, nil
	case nil:
		return s, errors.Wrap(ErrUnknownAction, "nil action")
	default:
		return s, errors.Wrapf(ErrUnknownAction, "action %q", a.Name())
	}
}

// ParseAction maps a typed-in action name onto an Action.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "increment", "inc", "+":
		return Increment{}, nil
	case "decrement", "dec", "-":
		return Decrement{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAction, "action %q", name)
	}
}
