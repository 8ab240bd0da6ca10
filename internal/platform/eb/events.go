package eb

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/blomq/psygo/internal/event"
	"github.com/blomq/psygo/internal/input"
)

// axisScale converts a standard-layout axis value in [-1, 1] to the signed
// 16-bit raw range the registry stores.
const axisScale = 32767

// mouseButtons maps the ebiten mouse buttons the source reports to registry
// identifiers.
var mouseButtons = map[ebiten.MouseButton]input.MouseButton{
	ebiten.MouseButtonLeft:   input.MouseLeft,
	ebiten.MouseButtonMiddle: input.MouseMiddle,
	ebiten.MouseButtonRight:  input.MouseRight,
}

// Source translates ebiten's polled input state into runtime events, one
// batch per frame. It tracks per-axis values so axis events fire only on
// change, the way an event-driven platform reports them.
type Source struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	removed  []ebiten.GamepadID
	axes     map[ebiten.GamepadID][]int16
}

// NewSource creates an event source. One Source serves one loop.
func NewSource() *Source {
	return &Source{axes: make(map[ebiten.GamepadID][]int16)}
}

// Poll returns the events since the previous frame, in device order:
// keyboard, mouse, gamepad buttons, gamepad axes, disconnects.
func (s *Source) Poll() []event.Event {
	var evs []event.Event

	// Keyboard. Ebiten's just-pressed set never contains OS repeats, so the
	// repeat flag stays false.
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		evs = append(evs, event.KeyDown{Key: KeyCode(k)})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		evs = append(evs, event.KeyUp{Key: KeyCode(k)})
	}

	// Mouse.
	for btn, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			evs = append(evs, event.MouseButtonDown{Button: mb})
		}
		if inpututil.IsMouseButtonJustReleased(btn) {
			evs = append(evs, event.MouseButtonUp{Button: mb})
		}
	}

	// Gamepads with a standard layout.
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		jid := joystickID(id)
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				evs = append(evs, event.GamepadButtonDown{Joystick: jid, Button: input.GamepadButton(b)})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				evs = append(evs, event.GamepadButtonUp{Joystick: jid, Button: input.GamepadButton(b)})
			}
		}
		evs = append(evs, s.axisEvents(id, jid)...)
	}

	// Disconnects purge the axis cache alongside the registry records.
	s.removed = s.removed[:0]
	for id := range s.axes {
		if inpututil.IsGamepadJustDisconnected(id) {
			s.removed = append(s.removed, id)
		}
	}
	slices.Sort(s.removed)
	for _, id := range s.removed {
		delete(s.axes, id)
		evs = append(evs, event.GamepadRemoved{Joystick: joystickID(id)})
	}

	return evs
}

// axisEvents emits a motion event for every axis whose raw value changed
// since the last frame.
func (s *Source) axisEvents(id ebiten.GamepadID, jid input.JoystickID) []event.Event {
	cache, ok := s.axes[id]
	if !ok {
		cache = make([]int16, int(ebiten.StandardGamepadAxisMax)+1)
		s.axes[id] = cache
	}

	var evs []event.Event
	for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
		raw := axisRaw(ebiten.StandardGamepadAxisValue(id, a))
		if raw == cache[a] {
			continue
		}
		cache[a] = raw
		evs = append(evs, event.GamepadAxisMotion{
			Joystick: jid,
			Axis:     input.GamepadAxis(a),
			Value:    raw,
		})
	}
	return evs
}

// KeyCode converts an ebiten key to the registry's key identifier.
func KeyCode(k ebiten.Key) input.Key {
	return input.Key(k)
}

// joystickID offsets ebiten's zero-based gamepad ids by one, since joystick
// id 0 is reserved for the binding-layer wildcard.
func joystickID(id ebiten.GamepadID) input.JoystickID {
	return input.JoystickID(id) + 1
}

// axisRaw converts a standard-layout axis value in [-1, 1] to a signed
// 16-bit raw value, clamping out-of-range reports.
func axisRaw(v float64) int16 {
	switch {
	case v >= 1.0:
		return axisScale
	case v <= -1.0:
		return -axisScale - 1
	default:
		return int16(v * axisScale)
	}
}
