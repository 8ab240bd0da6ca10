package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestButtonState_String(t *testing.T) {
	tests := []struct {
		state    ButtonState
		expected string
	}{
		{StateUp, "Up"},
		{StateDown, "Down"},
		{StateClicked, "Clicked"},
		{StateHeld, "Held"},
		{StateReleased, "Released"},
		{ButtonState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestButtonRecord_HoldThresholdBoundary(t *testing.T) {
	threshold := 300 * time.Millisecond
	t0 := time.Unix(0, 0)

	var b buttonRecord
	b.press(t0)

	// 290ms after press: still a plain Down.
	b.advance(t0.Add(290*time.Millisecond), threshold)
	assert.Equal(t, StateDown, b.state)

	// Exactly at the threshold: the boundary belongs to Held.
	b.advance(t0.Add(300*time.Millisecond), threshold)
	assert.Equal(t, StateHeld, b.state)
}

func TestButtonRecord_ClickVsRelease(t *testing.T) {
	threshold := 300 * time.Millisecond
	t0 := time.Unix(0, 0)

	t.Run("released before threshold is Clicked", func(t *testing.T) {
		var b buttonRecord
		b.press(t0)
		b.advance(t0.Add(50*time.Millisecond), threshold)
		b.release()
		b.advance(t0.Add(100*time.Millisecond), threshold)
		assert.Equal(t, StateClicked, b.state)
	})

	t.Run("released after threshold is Released", func(t *testing.T) {
		var b buttonRecord
		b.press(t0)
		b.advance(t0.Add(400*time.Millisecond), threshold)
		b.release()
		b.advance(t0.Add(500*time.Millisecond), threshold)
		assert.Equal(t, StateReleased, b.state)
	})
}

func TestButtonRecord_SettlesToUpAfterRelease(t *testing.T) {
	threshold := 300 * time.Millisecond
	t0 := time.Unix(0, 0)

	var b buttonRecord
	b.press(t0)
	b.advance(t0.Add(100*time.Millisecond), threshold)
	b.release()
	b.advance(t0.Add(150*time.Millisecond), threshold)
	assert.Equal(t, StateClicked, b.state)

	// One tick later the transient click has passed.
	b.advance(t0.Add(200*time.Millisecond), threshold)
	assert.Equal(t, StateUp, b.state)
}

func TestButtonRecord_KeyRepeatKeepsPressTime(t *testing.T) {
	threshold := 300 * time.Millisecond
	t0 := time.Unix(0, 0)

	var b buttonRecord
	b.press(t0)
	// Key repeat fires another press without an intervening release.
	b.press(t0.Add(250 * time.Millisecond))

	// Hold duration is measured from the first press, so 300ms after t0 the
	// button is Held even though the repeat press was only 50ms ago.
	b.advance(t0.Add(300*time.Millisecond), threshold)
	assert.Equal(t, StateHeld, b.state)
}

func TestButtonRecord_ReleaseKeepsPressTime(t *testing.T) {
	threshold := 300 * time.Millisecond
	t0 := time.Unix(0, 0)

	var b buttonRecord
	b.press(t0)
	b.advance(t0.Add(100*time.Millisecond), threshold)
	b.release()
	assert.Equal(t, t0, b.pressTime, "release must not touch the press time")
}
