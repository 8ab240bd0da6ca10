// Package state defines the application state interface and the LIFO stack
// that dispatches loop callbacks to the top state.
//
// Each screen (title, menu, playing, settings, etc.) implements State; the
// stack owns the pushed instances exclusively and only the top of the stack
// receives events, updates and the render call.
package state

import (
	"github.com/blomq/psygo/internal/event"
	"github.com/blomq/psygo/internal/runtime"
)

// State is one application screen.
//
// The runtime loop never talks to a State directly; it drives the Stack,
// which delegates to the top state only.
type State interface {
	// OnEnter is called when the state is pushed. Returning an error aborts
	// the push and the state never becomes active.
	OnEnter() error

	// OnExit is called when the state is popped or the stack is cleared.
	OnExit()

	// HandleEvent receives every pumped platform event while the state is on
	// top of the stack.
	HandleEvent(ev event.Event)

	// FixedUpdate advances the simulation by the fixed timestep, possibly
	// several times per frame.
	FixedUpdate(dt float64)

	// Update runs once per frame with the variable frame delta, for
	// render-side logic.
	Update(dt float64)

	// Render draws the state. alpha is the interpolation factor in [0, 1)
	// between the previous and current fixed-update snapshots.
	Render(surface runtime.Surface, alpha float64)
}

// Stack is a LIFO of states implementing runtime.Dispatcher. All dispatch
// methods are no-ops while the stack is empty.
type Stack struct {
	states []State
}

// NewStack creates an empty state stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push makes st the active state. If its OnEnter fails the push is undone
// and the error returned; the previous top stays active.
func (s *Stack) Push(st State) error {
	if st == nil {
		return nil
	}
	s.states = append(s.states, st)
	if err := st.OnEnter(); err != nil {
		s.states = s.states[:len(s.states)-1]
		return err
	}
	return nil
}

// Pop removes the active state, calling its OnExit. It reports whether a
// state was removed.
func (s *Stack) Pop() bool {
	if len(s.states) == 0 {
		return false
	}
	top := s.states[len(s.states)-1]
	s.states = s.states[:len(s.states)-1]
	top.OnExit()
	return true
}

// Replace swaps the active state for st. With an empty stack it is a plain
// push.
func (s *Stack) Replace(st State) error {
	s.Pop()
	return s.Push(st)
}

// Clear pops every state, exiting them top-down.
func (s *Stack) Clear() {
	for s.Pop() {
	}
}

// Len returns the number of stacked states.
func (s *Stack) Len() int {
	return len(s.states)
}

// HandleEvent forwards the event to the top state.
func (s *Stack) HandleEvent(ev event.Event) {
	if top, ok := s.top(); ok {
		top.HandleEvent(ev)
	}
}

// FixedUpdate forwards a fixed step to the top state.
func (s *Stack) FixedUpdate(dt float64) {
	if top, ok := s.top(); ok {
		top.FixedUpdate(dt)
	}
}

// Update forwards the variable-step update to the top state.
func (s *Stack) Update(dt float64) {
	if top, ok := s.top(); ok {
		top.Update(dt)
	}
}

// Render forwards the render call to the top state.
func (s *Stack) Render(surface runtime.Surface, alpha float64) {
	if top, ok := s.top(); ok {
		top.Render(surface, alpha)
	}
}

func (s *Stack) top() (State, bool) {
	if len(s.states) == 0 {
		return nil, false
	}
	return s.states[len(s.states)-1], true
}
