package eb

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// TextureCache memoizes loaded textures by path. A path is read from disk at
// most once; later lookups return the cached image.
type TextureCache struct {
	textures map[string]*ebiten.Image
	load     func(path string) (*ebiten.Image, error)
}

// NewTextureCache creates an empty cache loading through ebitenutil.
func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[string]*ebiten.Image),
		load: func(path string) (*ebiten.Image, error) {
			img, _, err := ebitenutil.NewImageFromFile(path)
			return img, err
		},
	}
}

// Load returns the texture for path, reading it on the first request.
func (c *TextureCache) Load(path string) (*ebiten.Image, error) {
	if img, ok := c.textures[path]; ok {
		return img, nil
	}
	img, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	c.textures[path] = img
	return img, nil
}

// Evict drops the cached texture for path, if any.
func (c *TextureCache) Evict(path string) {
	delete(c.textures, path)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}
