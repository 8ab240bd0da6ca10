// Package event defines the closed set of platform events the runtime pumps
// each frame, and the Source interface that produces them.
//
// Events form a sealed union: every concrete type implements the unexported
// marker method, and consumers dispatch with a type switch.
package event

import "github.com/blomq/psygo/internal/input"

// Event is one platform event. The concrete types below are the only
// implementations.
type Event interface {
	isEvent()
}

// Source yields the pending platform events for one frame. Each Poll call
// returns a finite, ordered batch; the runtime polls exactly once per
// iteration and routes every event.
type Source interface {
	Poll() []Event
}

// Quit requests loop termination (window close, OS signal).
type Quit struct{}

// KeyDown reports a keyboard press. Repeat is set for OS key-repeat events,
// which must not restamp press times.
type KeyDown struct {
	Key    input.Key
	Repeat bool
}

// KeyUp reports a keyboard release.
type KeyUp struct {
	Key input.Key
}

// MouseButtonDown reports a mouse button press.
type MouseButtonDown struct {
	Button input.MouseButton
}

// MouseButtonUp reports a mouse button release.
type MouseButtonUp struct {
	Button input.MouseButton
}

// GamepadButtonDown reports a gamepad button press on a concrete joystick.
type GamepadButtonDown struct {
	Joystick input.JoystickID
	Button   input.GamepadButton
}

// GamepadButtonUp reports a gamepad button release on a concrete joystick.
type GamepadButtonUp struct {
	Joystick input.JoystickID
	Button   input.GamepadButton
}

// GamepadAxisMotion reports a new raw value for a gamepad axis.
type GamepadAxisMotion struct {
	Joystick input.JoystickID
	Axis     input.GamepadAxis
	Value    int16
}

// GamepadRemoved reports that a joystick disconnected. All state scoped to
// it is purged immediately.
type GamepadRemoved struct {
	Joystick input.JoystickID
}

func (Quit) isEvent()              {}
func (KeyDown) isEvent()           {}
func (KeyUp) isEvent()             {}
func (MouseButtonDown) isEvent()   {}
func (MouseButtonUp) isEvent()     {}
func (GamepadButtonDown) isEvent() {}
func (GamepadButtonUp) isEvent()   {}
func (GamepadAxisMotion) isEvent() {}
func (GamepadRemoved) isEvent()    {}
