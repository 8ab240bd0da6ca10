package input

import "time"

// Joystick axis raw value bounds, matching a signed 16-bit axis report.
const (
	axisMax = 32767
	axisMin = -32768
)

// DefaultHoldThreshold is the press duration that separates a click from a
// hold when no other threshold is configured.
const DefaultHoldThreshold = 300 * time.Millisecond

// axisRecord stores the latest raw value for one (joystick, axis) pair.
type axisRecord struct {
	value int16
}

// Registry owns every tracked button and axis record.
//
// Records are created lazily on the first event that references an input
// unit; gamepad-scoped records are purged when their joystick is removed.
// Queries for unknown units always resolve to Up / zero, never an error.
//
// Registry is not safe for concurrent use: the runtime mutates it during
// event pumping and recomputes state in Tick, all on the loop goroutine.
type Registry struct {
	keys  map[Key]*buttonRecord
	mouse map[MouseButton]*buttonRecord

	gamepadButtons map[JoystickID]map[GamepadButton]*buttonRecord
	axes           map[JoystickID]map[GamepadAxis]*axisRecord

	holdThreshold time.Duration
}

// NewRegistry creates an empty registry with the default hold threshold.
func NewRegistry() *Registry {
	return &Registry{
		keys:           make(map[Key]*buttonRecord),
		mouse:          make(map[MouseButton]*buttonRecord),
		gamepadButtons: make(map[JoystickID]map[GamepadButton]*buttonRecord),
		axes:           make(map[JoystickID]map[GamepadAxis]*axisRecord),
		holdThreshold:  DefaultHoldThreshold,
	}
}

// SetHoldThreshold sets the press duration that separates a click from a hold.
func (r *Registry) SetHoldThreshold(d time.Duration) {
	r.holdThreshold = d
}

// HoldThreshold returns the configured click/hold boundary.
func (r *Registry) HoldThreshold() time.Duration {
	return r.holdThreshold
}

// Tick recomputes the discrete state of every tracked record at the given
// instant. The runtime calls it exactly once per iteration, after the event
// pump and before any update.
func (r *Registry) Tick(now time.Time) {
	for _, b := range r.keys {
		b.advance(now, r.holdThreshold)
	}
	for _, b := range r.mouse {
		b.advance(now, r.holdThreshold)
	}
	for _, buttons := range r.gamepadButtons {
		for _, b := range buttons {
			b.advance(now, r.holdThreshold)
		}
	}
}

// --- event-side mutation ---

// KeyPress records a keyboard press at the given instant.
func (r *Registry) KeyPress(k Key, now time.Time) {
	r.keyRecord(k).press(now)
}

// KeyRelease records a keyboard release.
func (r *Registry) KeyRelease(k Key) {
	r.keyRecord(k).release()
}

// MousePress records a mouse button press at the given instant.
func (r *Registry) MousePress(b MouseButton, now time.Time) {
	r.mouseRecord(b).press(now)
}

// MouseRelease records a mouse button release.
func (r *Registry) MouseRelease(b MouseButton) {
	r.mouseRecord(b).release()
}

// GamepadPress records a gamepad button press for a concrete joystick.
func (r *Registry) GamepadPress(id JoystickID, b GamepadButton, now time.Time) {
	r.gamepadRecord(id, b).press(now)
}

// GamepadRelease records a gamepad button release for a concrete joystick.
func (r *Registry) GamepadRelease(id JoystickID, b GamepadButton) {
	r.gamepadRecord(id, b).release()
}

// AxisMotion stores the latest raw value for a gamepad axis.
func (r *Registry) AxisMotion(id JoystickID, axis GamepadAxis, value int16) {
	axes, ok := r.axes[id]
	if !ok {
		axes = make(map[GamepadAxis]*axisRecord)
		r.axes[id] = axes
	}
	rec, ok := axes[axis]
	if !ok {
		rec = &axisRecord{}
		axes[axis] = rec
	}
	rec.value = value
}

// RemoveJoystick purges every button and axis record scoped to the given
// joystick. Subsequent queries behave as if the device was never seen.
func (r *Registry) RemoveJoystick(id JoystickID) {
	delete(r.gamepadButtons, id)
	delete(r.axes, id)
}

// --- queries ---

// KeyState returns the discrete state of a keyboard key.
func (r *Registry) KeyState(k Key) ButtonState {
	if b, ok := r.keys[k]; ok {
		return b.state
	}
	return StateUp
}

// IsKeyClicked reports whether the key was clicked this frame.
func (r *Registry) IsKeyClicked(k Key) bool {
	return r.KeyState(k) == StateClicked
}

// IsKeyHeld reports whether the key has crossed the hold threshold.
func (r *Registry) IsKeyHeld(k Key) bool {
	return r.KeyState(k) == StateHeld
}

// IsKeyDown reports whether the key is currently pressed (Down or Held).
func (r *Registry) IsKeyDown(k Key) bool {
	st := r.KeyState(k)
	return st == StateDown || st == StateHeld
}

// IsKeyReleased reports whether the key was released this frame after a hold.
func (r *Registry) IsKeyReleased(k Key) bool {
	return r.KeyState(k) == StateReleased
}

// MouseState returns the discrete state of a mouse button.
func (r *Registry) MouseState(b MouseButton) ButtonState {
	if rec, ok := r.mouse[b]; ok {
		return rec.state
	}
	return StateUp
}

// IsMouseClicked reports whether the mouse button was clicked this frame.
func (r *Registry) IsMouseClicked(b MouseButton) bool {
	return r.MouseState(b) == StateClicked
}

// IsMouseHeld reports whether the mouse button has crossed the hold threshold.
func (r *Registry) IsMouseHeld(b MouseButton) bool {
	return r.MouseState(b) == StateHeld
}

// IsMouseDown reports whether the mouse button is currently pressed.
func (r *Registry) IsMouseDown(b MouseButton) bool {
	st := r.MouseState(b)
	return st == StateDown || st == StateHeld
}

// IsMouseReleased reports whether the mouse button was released after a hold.
func (r *Registry) IsMouseReleased(b MouseButton) bool {
	return r.MouseState(b) == StateReleased
}

// GamepadState returns the discrete state of a gamepad button on a concrete
// joystick.
func (r *Registry) GamepadState(id JoystickID, b GamepadButton) ButtonState {
	if buttons, ok := r.gamepadButtons[id]; ok {
		if rec, ok := buttons[b]; ok {
			return rec.state
		}
	}
	return StateUp
}

// IsGamepadClicked reports whether the gamepad button was clicked this frame.
func (r *Registry) IsGamepadClicked(id JoystickID, b GamepadButton) bool {
	return r.GamepadState(id, b) == StateClicked
}

// IsGamepadHeld reports whether the gamepad button has crossed the hold
// threshold.
func (r *Registry) IsGamepadHeld(id JoystickID, b GamepadButton) bool {
	return r.GamepadState(id, b) == StateHeld
}

// IsGamepadDown reports whether the gamepad button is currently pressed.
func (r *Registry) IsGamepadDown(id JoystickID, b GamepadButton) bool {
	st := r.GamepadState(id, b)
	return st == StateDown || st == StateHeld
}

// IsGamepadReleased reports whether the gamepad button was released after a
// hold.
func (r *Registry) IsGamepadReleased(id JoystickID, b GamepadButton) bool {
	return r.GamepadState(id, b) == StateReleased
}

// Joysticks returns the ids of every joystick with at least one button
// record. The binding layer uses this set to resolve the wildcard joystick.
func (r *Registry) Joysticks() []JoystickID {
	ids := make([]JoystickID, 0, len(r.gamepadButtons))
	for id := range r.gamepadButtons {
		ids = append(ids, id)
	}
	return ids
}

// AxisRaw returns the latest raw value for a gamepad axis, or 0 when the
// (joystick, axis) pair has never reported.
func (r *Registry) AxisRaw(id JoystickID, axis GamepadAxis) int16 {
	if axes, ok := r.axes[id]; ok {
		if rec, ok := axes[axis]; ok {
			return rec.value
		}
	}
	return 0
}

// AxisNormalized returns the axis value scaled into [-1, 1]. Positive raw
// values divide by the positive maximum, negative ones by the magnitude of
// the minimum, so both endpoints map exactly to ±1.
func (r *Registry) AxisNormalized(id JoystickID, axis GamepadAxis) float64 {
	raw := r.AxisRaw(id, axis)
	switch {
	case raw == 0:
		return 0.0
	case raw > 0:
		return float64(raw) / axisMax
	default:
		return float64(raw) / -float64(axisMin)
	}
}

// --- lazy record helpers ---

func (r *Registry) keyRecord(k Key) *buttonRecord {
	b, ok := r.keys[k]
	if !ok {
		b = &buttonRecord{}
		r.keys[k] = b
	}
	return b
}

func (r *Registry) mouseRecord(mb MouseButton) *buttonRecord {
	b, ok := r.mouse[mb]
	if !ok {
		b = &buttonRecord{}
		r.mouse[mb] = b
	}
	return b
}

func (r *Registry) gamepadRecord(id JoystickID, gb GamepadButton) *buttonRecord {
	buttons, ok := r.gamepadButtons[id]
	if !ok {
		buttons = make(map[GamepadButton]*buttonRecord)
		r.gamepadButtons[id] = buttons
	}
	b, ok := buttons[gb]
	if !ok {
		b = &buttonRecord{}
		buttons[gb] = b
	}
	return b
}
