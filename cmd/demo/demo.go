package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/blomq/psygo/internal/event"
	"github.com/blomq/psygo/internal/input"
	"github.com/blomq/psygo/internal/platform/eb"
	"github.com/blomq/psygo/internal/psyrand"
	"github.com/blomq/psygo/internal/runtime"
)

const (
	boxSize    = 24.0
	boxSpeed   = 180.0 // pixels per second
	boostSpeed = 420.0
)

var (
	colorBox     = color.RGBA{100, 200, 100, 255}
	colorBoosted = color.RGBA{255, 200, 100, 255}
)

// demoState bounces a box around the screen. Movement is integrated in
// FixedUpdate; Render interpolates between the previous and current
// positions with the loop's alpha so motion stays smooth at any frame rate.
type demoState struct {
	loop    *runtime.Loop
	actions *input.ActionMap
	rng     *psyrand.Rand

	screenW float64
	screenH float64

	x, y         float64
	prevX, prevY float64
	vx, vy       float64
	boosting     bool
	pads         int
}

func newDemoState(loop *runtime.Loop, actions *input.ActionMap, rng *psyrand.Rand, screenW, screenH float64) *demoState {
	return &demoState{
		loop:    loop,
		actions: actions,
		rng:     rng,
		screenW: screenW,
		screenH: screenH,
	}
}

// OnEnter binds the demo's actions and launches the box in a random
// direction.
func (d *demoState) OnEnter() error {
	d.actions.BindKey("quit", eb.KeyCode(ebiten.KeyEscape))
	d.actions.BindKey("boost", eb.KeyCode(ebiten.KeySpace))
	d.actions.BindGamepadButton("boost", input.GamepadButton(ebiten.StandardGamepadButtonRightBottom), input.AnyJoystick)
	d.actions.BindMouseButton("bounce", input.MouseLeft)

	d.x = d.screenW / 2
	d.y = d.screenH / 2
	d.prevX, d.prevY = d.x, d.y
	d.vx = d.rng.FloatInRange(-boxSpeed, boxSpeed)
	d.vy = d.rng.FloatInRange(-boxSpeed, boxSpeed)
	return nil
}

func (d *demoState) OnExit() {}

// HandleEvent tracks gamepad presence for the on-screen hint.
func (d *demoState) HandleEvent(ev event.Event) {
	switch ev.(type) {
	case event.GamepadButtonDown:
		if d.pads == 0 {
			d.pads = 1
		}
	case event.GamepadRemoved:
		d.pads = 0
	}
}

// FixedUpdate integrates the box position and bounces off the walls.
func (d *demoState) FixedUpdate(dt float64) {
	d.prevX, d.prevY = d.x, d.y

	speed := boxSpeed
	d.boosting = d.actions.IsDown("boost")
	if d.boosting {
		speed = boostSpeed
	}
	dir := func(v float64) float64 {
		if v < 0 {
			return -1
		}
		return 1
	}
	d.vx = dir(d.vx) * speed
	d.vy = dir(d.vy) * speed

	d.x += d.vx * dt
	d.y += d.vy * dt

	if d.x < 0 {
		d.x = 0
		d.vx = -d.vx
	}
	if d.x > d.screenW-boxSize {
		d.x = d.screenW - boxSize
		d.vx = -d.vx
	}
	if d.y < 0 {
		d.y = 0
		d.vy = -d.vy
	}
	if d.y > d.screenH-boxSize {
		d.y = d.screenH - boxSize
		d.vy = -d.vy
	}
}

// Update handles frame-rate-independent controls.
func (d *demoState) Update(dt float64) {
	if d.actions.IsClicked("quit") {
		d.loop.Quit()
	}
	if d.actions.IsClicked("bounce") {
		d.vx, d.vy = -d.vy, d.vx // quarter turn
	}
}

// Render draws the box at the interpolated position.
func (d *demoState) Render(surface runtime.Surface, alpha float64) {
	s, ok := surface.(*eb.Surface)
	if !ok {
		return
	}
	img := s.Image()

	x := d.prevX + (d.x-d.prevX)*alpha
	y := d.prevY + (d.y-d.prevY)*alpha

	c := colorBox
	if d.boosting {
		c = colorBoosted
	}
	ebitenutil.DrawRect(img, x, y, boxSize, boxSize, c)

	hint := "Space/gamepad A: boost | LClick: turn | ESC: quit"
	if d.loop.Lagging() {
		hint += " | LAGGING"
	}
	ebitenutil.DebugPrint(img, hint)
	ebitenutil.DebugPrintAt(img, fmt.Sprintf("alpha: %.2f", alpha), 0, int(d.screenH)-16)
}
