package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

var whiteColor = color.White

const textureCacheSize = 256

// TextureCache is a bounded LRU of decoded images keyed by file path,
// shared by image components when their list enables caching.
type TextureCache struct {
	cache *lru.Cache[string, *ebiten.Image]
}

// NewTextureCache returns a cache holding up to textureCacheSize
// entries. Evicted textures are deallocated.
func NewTextureCache() (*TextureCache, error) {
	c, err := lru.NewWithEvict[string, *ebiten.Image](textureCacheSize, func(_ string, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("creating texture cache: %w", err)
	}
	return &TextureCache{cache: c}, nil
}

// Get returns the cached texture for a path, loading and caching it
// on a miss.
func (t *TextureCache) Get(path string) (*ebiten.Image, error) {
	if img, ok := t.cache.Get(path); ok {
		return img, nil
	}
	img, err := loadTexture(path)
	if err != nil {
		return nil, err
	}
	t.cache.Add(path, img)
	return img, nil
}

// Purge drops every cached texture.
func (t *TextureCache) Purge() {
	t.cache.Purge()
}

// Len returns the number of cached textures.
func (t *TextureCache) Len() int {
	return t.cache.Len()
}

// decodeImageConfig reads only the image header for dimensions.
func decodeImageConfig(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image header %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func loadTexture(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(src), nil
}
