package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testKeyW      Key           = 26
	testKeySpace  Key           = 44
	testButtonA   GamepadButton = 0
	testAxisLeftX GamepadAxis   = 0
	testPad       JoystickID    = 3
)

func TestRegistry_UnknownUnitsReportUp(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, StateUp, r.KeyState(testKeyW))
	assert.Equal(t, StateUp, r.MouseState(MouseLeft))
	assert.Equal(t, StateUp, r.GamepadState(testPad, testButtonA))
	assert.False(t, r.IsKeyDown(testKeyW))
	assert.False(t, r.IsMouseClicked(MouseLeft))
	assert.Equal(t, int16(0), r.AxisRaw(testPad, testAxisLeftX))
	assert.Equal(t, 0.0, r.AxisNormalized(testPad, testAxisLeftX))
}

func TestRegistry_KeyPressHoldReleaseCycle(t *testing.T) {
	r := NewRegistry()
	t0 := time.Unix(0, 0)

	r.KeyPress(testKeyW, t0)
	r.Tick(t0.Add(100 * time.Millisecond))
	assert.True(t, r.IsKeyDown(testKeyW))
	assert.False(t, r.IsKeyHeld(testKeyW))

	r.Tick(t0.Add(400 * time.Millisecond))
	assert.True(t, r.IsKeyHeld(testKeyW))
	assert.True(t, r.IsKeyDown(testKeyW), "Held still counts as down")

	r.KeyRelease(testKeyW)
	r.Tick(t0.Add(450 * time.Millisecond))
	assert.True(t, r.IsKeyReleased(testKeyW))
	assert.False(t, r.IsKeyDown(testKeyW))
}

func TestRegistry_MouseClick(t *testing.T) {
	r := NewRegistry()
	t0 := time.Unix(0, 0)

	r.MousePress(MouseLeft, t0)
	r.Tick(t0.Add(50 * time.Millisecond))
	r.MouseRelease(MouseLeft)
	r.Tick(t0.Add(100 * time.Millisecond))

	assert.True(t, r.IsMouseClicked(MouseLeft))
}

func TestRegistry_HoldThresholdConfigurable(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, DefaultHoldThreshold, r.HoldThreshold())

	r.SetHoldThreshold(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, r.HoldThreshold())

	t0 := time.Unix(0, 0)
	r.KeyPress(testKeySpace, t0)
	r.Tick(t0.Add(60 * time.Millisecond))
	assert.True(t, r.IsKeyHeld(testKeySpace))
}

func TestRegistry_DeviceRemovalPurgesRecords(t *testing.T) {
	r := NewRegistry()
	t0 := time.Unix(0, 0)

	r.GamepadPress(testPad, testButtonA, t0)
	r.AxisMotion(testPad, testAxisLeftX, 12000)
	r.Tick(t0.Add(10 * time.Millisecond))
	assert.True(t, r.IsGamepadDown(testPad, testButtonA))
	assert.Equal(t, int16(12000), r.AxisRaw(testPad, testAxisLeftX))

	r.RemoveJoystick(testPad)

	assert.Equal(t, StateUp, r.GamepadState(testPad, testButtonA))
	assert.Equal(t, int16(0), r.AxisRaw(testPad, testAxisLeftX))
	assert.Empty(t, r.Joysticks())
}

func TestRegistry_RemovalScopedToOneJoystick(t *testing.T) {
	r := NewRegistry()
	t0 := time.Unix(0, 0)
	other := JoystickID(7)

	r.GamepadPress(testPad, testButtonA, t0)
	r.GamepadPress(other, testButtonA, t0)
	r.Tick(t0.Add(10 * time.Millisecond))

	r.RemoveJoystick(testPad)

	assert.True(t, r.IsGamepadDown(other, testButtonA))
	assert.Equal(t, []JoystickID{other}, r.Joysticks())
}

func TestRegistry_AxisNormalization(t *testing.T) {
	tests := []struct {
		name     string
		raw      int16
		expected float64
	}{
		{"positive max", 32767, 1.0},
		{"negative min", -32768, -1.0},
		{"zero", 0, 0.0},
		{"half positive", 16384, 16384.0 / 32767.0},
		{"half negative", -16384, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.AxisMotion(testPad, testAxisLeftX, tt.raw)
			assert.InDelta(t, tt.expected, r.AxisNormalized(testPad, testAxisLeftX), 1e-9)
		})
	}
}

func TestRegistry_StateStableBetweenTicks(t *testing.T) {
	r := NewRegistry()
	t0 := time.Unix(0, 0)

	r.KeyPress(testKeyW, t0)
	r.Tick(t0.Add(10 * time.Millisecond))

	// A release between ticks must not change the queried state until the
	// next Tick recomputes it.
	r.KeyRelease(testKeyW)
	assert.True(t, r.IsKeyDown(testKeyW))

	r.Tick(t0.Add(20 * time.Millisecond))
	assert.False(t, r.IsKeyDown(testKeyW))
	assert.True(t, r.IsKeyClicked(testKeyW))
}
