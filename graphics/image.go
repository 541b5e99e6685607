package graphics

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageComponent draws a texture loaded from a file. The GPU upload is
// deferred to the first Draw so allocation stays cheap during scroll
// rebuilds.
type ImageComponent struct {
	*Base

	path    string
	cache   *TextureCache
	texture *ebiten.Image
	loaded  bool
}

// NewImageComponent returns an image component for a file path. A nil
// cache loads textures unshared.
func NewImageComponent(base *Base, path string, cache *TextureCache) *ImageComponent {
	return &ImageComponent{Base: base, path: path, cache: cache}
}

// FilePath returns the backing file.
func (c *ImageComponent) FilePath() string { return c.path }

// AllocateGraphicsMemory publishes the image's natural size so layout
// math works before the texture is uploaded.
func (c *ImageComponent) AllocateGraphicsMemory() {
	if c.BaseViewInfo.ImageWidth != 0 || c.BaseViewInfo.ImageHeight != 0 {
		return
	}
	w, h, err := decodeImageConfig(c.path)
	if err != nil {
		log.Printf("image %s: %v", c.path, err)
		return
	}
	c.BaseViewInfo.ImageWidth = float64(w)
	c.BaseViewInfo.ImageHeight = float64(h)
}

// FreeGraphicsMemory drops the texture. Cached textures stay owned by
// the cache.
func (c *ImageComponent) FreeGraphicsMemory() {
	if c.texture != nil && c.cache == nil {
		c.texture.Deallocate()
	}
	c.texture = nil
	c.loaded = false
	c.Base.FreeGraphicsMemory()
}

func (c *ImageComponent) ensureTexture() {
	if c.loaded {
		return
	}
	c.loaded = true

	var err error
	if c.cache != nil {
		c.texture, err = c.cache.Get(c.path)
	} else {
		c.texture, err = loadTexture(c.path)
	}
	if err != nil {
		log.Printf("image %s: %v", c.path, err)
		c.texture = nil
		return
	}
	b := c.texture.Bounds()
	c.BaseViewInfo.ImageWidth = float64(b.Dx())
	c.BaseViewInfo.ImageHeight = float64(b.Dy())
}

// Draw renders the texture through the view transform.
func (c *ImageComponent) Draw(screen *ebiten.Image) {
	c.Base.Draw(screen)
	if c.BaseViewInfo.Alpha <= 0 {
		return
	}
	c.ensureTexture()
	if c.texture == nil {
		return
	}

	w := c.BaseViewInfo.ScaledWidth()
	h := c.BaseViewInfo.ScaledHeight()
	if w <= 0 || h <= 0 {
		return
	}

	b := c.texture.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if c.BaseViewInfo.Angle != 0 {
		// Layout angles are in degrees.
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(c.BaseViewInfo.Angle * math.Pi / 180)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Translate(c.BaseViewInfo.XRelativeToOrigin(), c.BaseViewInfo.YRelativeToOrigin())
	op.ColorScale.ScaleAlpha(float32(c.BaseViewInfo.Alpha))
	if c.BaseViewInfo.Additive {
		op.Blend = ebiten.BlendLighter
	}
	screen.DrawImage(c.texture, op)
}
