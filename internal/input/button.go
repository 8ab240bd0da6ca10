// Package input tracks the state of input devices (keyboard, mouse, gamepads)
// and exposes action bindings that aggregate raw inputs under symbolic names.
//
// The registry derives discrete button states (Up, Down, Held, Clicked,
// Released) from raw press/release transitions once per loop tick; queries
// between ticks are stable snapshots of the last recomputation.
package input

import "time"

// Key identifies a keyboard key. Values are platform key codes; the package
// never interprets them beyond map identity.
type Key int

// MouseButton identifies a mouse button.
type MouseButton int

// Standard mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseBack
	MouseForward
)

// GamepadButton identifies a gamepad button in a standard layout.
type GamepadButton int

// GamepadAxis identifies a gamepad axis in a standard layout.
type GamepadAxis int

// JoystickID identifies a connected gamepad. The zero value is reserved for
// the "any joystick" wildcard at the binding layer; real devices must report
// non-zero ids.
type JoystickID int

// AnyJoystick matches any currently known joystick when used in a gamepad
// button binding.
const AnyJoystick JoystickID = 0

// ButtonState is the discrete per-frame state of a button or key.
type ButtonState int

const (
	// StateUp means the button is not pressed and was not recently released.
	StateUp ButtonState = iota
	// StateDown means the button is pressed but has not yet crossed the hold
	// threshold.
	StateDown
	// StateClicked means the button was released before the hold threshold.
	StateClicked
	// StateHeld means the button has been pressed for at least the hold
	// threshold.
	StateHeld
	// StateReleased means the button was released after the hold threshold.
	StateReleased
)

// String returns the string representation of the button state.
func (s ButtonState) String() string {
	switch s {
	case StateUp:
		return "Up"
	case StateDown:
		return "Down"
	case StateClicked:
		return "Clicked"
	case StateHeld:
		return "Held"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// buttonRecord tracks one raw input unit between ticks.
//
// isDown is mutated only by press/release events; state is recomputed exactly
// once per tick by advance, which also latches wasDown.
type buttonRecord struct {
	isDown    bool
	wasDown   bool
	pressTime time.Time
	state     ButtonState
}

// press records a raw press transition. Repeated presses while already down
// (key repeat) keep the original press time so a held button is never
// reclassified as freshly pressed.
func (b *buttonRecord) press(now time.Time) {
	if !b.isDown {
		b.pressTime = now
	}
	b.isDown = true
}

// release records a raw release transition. The press time is kept so the
// next advance can classify Clicked vs Released against it.
func (b *buttonRecord) release() {
	b.isDown = false
}

// advance recomputes the discrete state at the given instant.
// The hold threshold boundary belongs to Held.
func (b *buttonRecord) advance(now time.Time, holdThreshold time.Duration) {
	b.state = StateUp

	if b.isDown {
		if now.Sub(b.pressTime) >= holdThreshold {
			b.state = StateHeld
		} else {
			b.state = StateDown
		}
	} else if b.wasDown {
		if now.Sub(b.pressTime) < holdThreshold {
			b.state = StateClicked
		} else {
			b.state = StateReleased
		}
	}

	b.wasDown = b.isDown
}
