package eb

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/blomq/psygo/internal/config"
	"github.com/blomq/psygo/internal/runtime"
)

// Game implements ebiten.Game by pumping the runtime loop once per frame
// and blitting the loop's offscreen surface to the window.
type Game struct {
	loop    *runtime.Loop
	surface *Surface
	width   int
	height  int
}

// NewGame wires a loop and its surface into an ebiten.Game at the given
// logical resolution.
func NewGame(loop *runtime.Loop, surface *Surface, width, height int) *Game {
	return &Game{
		loop:    loop,
		surface: surface,
		width:   width,
		height:  height,
	}
}

// Update runs one loop iteration. Implements ebiten.Game.
func (g *Game) Update() error {
	if !g.loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw blits the loop's surface to the screen. Implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
}

// Layout returns the logical screen dimensions. Implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window per the config and blocks until the loop stops or
// the window closes. Window or graphics initialization failure surfaces as
// the returned error; the loop never starts in that case.
func Run(cfg config.WindowConfig, game *Game) error {
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
