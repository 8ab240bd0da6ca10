// Package runtime drives the main loop: it measures frame time, decouples
// the fixed-step simulation from rendering with an accumulator, pumps
// platform events into the input registry and the state dispatcher, and
// computes the interpolation factor for smooth rendering.
package runtime

import "github.com/blomq/psygo/internal/event"

// Surface is the opaque rendering target owned by the loop. The loop clears
// it, hands it to the dispatcher's Render, and presents it, in that order,
// once per iteration.
type Surface interface {
	Clear()
	Present()
}

// Dispatcher receives everything the loop delegates: events, fixed and
// variable updates, and the render call. The state stack implements it; a
// dispatcher with no active handler treats every call as a no-op.
type Dispatcher interface {
	HandleEvent(ev event.Event)
	FixedUpdate(dt float64)
	Update(dt float64)
	Render(surface Surface, alpha float64)
}

// Phase is the lifecycle state of a Loop.
type Phase int

const (
	// PhaseNotStarted means Run or Tick has not been called yet.
	PhaseNotStarted Phase = iota
	// PhaseRunning means the loop is iterating.
	PhaseRunning
	// PhaseStopped is terminal; a stopped loop cannot be restarted.
	PhaseStopped
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
