// Package eb bridges the runtime to ebiten: it implements the rendering
// surface and the event source, adapts ebiten's polled input into runtime
// events, and caches loaded textures.
//
// Ebiten owns the real frame callback, so the bridge drives Loop.Tick once
// per ebiten update instead of calling Loop.Run.
package eb

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is an offscreen render target at the logical resolution. The loop
// clears and draws into it; ebiten's Draw callback blits it to the window.
type Surface struct {
	image      *ebiten.Image
	background color.Color
}

// NewSurface creates a surface of the given logical size cleared to the
// given background color.
func NewSurface(width, height int, background color.Color) *Surface {
	return &Surface{
		image:      ebiten.NewImage(width, height),
		background: background,
	}
}

// Clear fills the surface with its background color.
func (s *Surface) Clear() {
	s.image.Fill(s.background)
}

// Present is a no-op: ebiten presents the frame after Draw returns.
func (s *Surface) Present() {}

// Image returns the underlying draw target for render code.
func (s *Surface) Image() *ebiten.Image {
	return s.image
}
