package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActionMap_UnknownActionIsInactive(t *testing.T) {
	m := NewActionMap(NewRegistry())

	assert.False(t, m.IsClicked("jump"))
	assert.False(t, m.IsHeld("jump"))
	assert.False(t, m.IsDown("jump"))
	assert.False(t, m.IsReleased("jump"))
}

func TestActionMap_ActionWithoutBindingsIsInactive(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)

	// Binding then querying a different action leaves "fire" empty.
	m.BindKey("jump", testKeySpace)

	assert.False(t, m.IsDown("fire"))
}

func TestActionMap_KeyBinding(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindKey("jump", testKeySpace)

	t0 := time.Unix(0, 0)
	r.KeyPress(testKeySpace, t0)
	r.Tick(t0.Add(10 * time.Millisecond))

	assert.True(t, m.IsDown("jump"))
	assert.False(t, m.IsHeld("jump"))
}

func TestActionMap_ORAggregation(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindKey("jump", testKeySpace)
	m.BindGamepadButton("jump", testButtonA, testPad)

	t0 := time.Unix(0, 0)

	// Only the gamepad button is down.
	r.GamepadPress(testPad, testButtonA, t0)
	r.Tick(t0.Add(10 * time.Millisecond))
	assert.True(t, m.IsDown("jump"))

	// Only the key is down.
	r.GamepadRelease(testPad, testButtonA)
	r.KeyPress(testKeySpace, t0.Add(20*time.Millisecond))
	r.Tick(t0.Add(30 * time.Millisecond))
	assert.True(t, m.IsDown("jump"))

	// Both up: two ticks so the transient click/release states settle.
	r.KeyRelease(testKeySpace)
	r.Tick(t0.Add(40 * time.Millisecond))
	r.Tick(t0.Add(50 * time.Millisecond))
	assert.False(t, m.IsDown("jump"))
	assert.False(t, m.IsClicked("jump"))
}

func TestActionMap_MouseBinding(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindMouseButton("fire", MouseLeft)

	t0 := time.Unix(0, 0)
	r.MousePress(MouseLeft, t0)
	r.Tick(t0.Add(10 * time.Millisecond))
	r.MouseRelease(MouseLeft)
	r.Tick(t0.Add(20 * time.Millisecond))

	assert.True(t, m.IsClicked("fire"))
}

func TestActionMap_WildcardJoystickMatchesAnyDevice(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindGamepadButton("jump", testButtonA, AnyJoystick)

	t0 := time.Unix(0, 0)

	// The wildcard must match whichever joystick actually reports the button.
	r.GamepadPress(JoystickID(9), testButtonA, t0)
	r.Tick(t0.Add(10 * time.Millisecond))
	assert.True(t, m.IsDown("jump"))

	// After that device goes away the action is inactive again.
	r.RemoveJoystick(JoystickID(9))
	assert.False(t, m.IsDown("jump"))
}

func TestActionMap_ConcreteJoystickIgnoresOthers(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindGamepadButton("jump", testButtonA, testPad)

	t0 := time.Unix(0, 0)
	r.GamepadPress(JoystickID(9), testButtonA, t0)
	r.Tick(t0.Add(10 * time.Millisecond))

	assert.False(t, m.IsDown("jump"), "binding is scoped to a different joystick")
}

func TestActionMap_DuplicateBindingsAllowed(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindKey("jump", testKeySpace)
	m.BindKey("jump", testKeySpace)

	t0 := time.Unix(0, 0)
	r.KeyPress(testKeySpace, t0)
	r.Tick(t0.Add(10 * time.Millisecond))

	assert.True(t, m.IsDown("jump"))
}

func TestActionMap_HeldAndReleased(t *testing.T) {
	r := NewRegistry()
	m := NewActionMap(r)
	m.BindGamepadButton("charge", testButtonA, AnyJoystick)

	t0 := time.Unix(0, 0)
	r.GamepadPress(testPad, testButtonA, t0)
	r.Tick(t0.Add(400 * time.Millisecond))
	assert.True(t, m.IsHeld("charge"))

	r.GamepadRelease(testPad, testButtonA)
	r.Tick(t0.Add(450 * time.Millisecond))
	assert.True(t, m.IsReleased("charge"))
}
