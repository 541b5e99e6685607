package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TextComponent renders a string with the layout's font, or the
// built-in face when the layout ships none. It doubles as the media
// fallback when no image or video matches an item.
type TextComponent struct {
	*Base

	content string
	face    text.Face
}

// NewTextComponent returns a text component. A nil face falls back to
// the built-in bitmap face.
func NewTextComponent(base *Base, content string, face text.Face) *TextComponent {
	c := &TextComponent{Base: base, content: content, face: face}
	if c.face == nil {
		c.face = text.NewGoXFace(basicfont.Face7x13)
	}
	c.publishSize()
	return c
}

// SetText replaces the displayed string.
func (c *TextComponent) SetText(s string) {
	if c.content == s {
		return
	}
	c.content = s
	c.publishSize()
}

// Text returns the displayed string.
func (c *TextComponent) Text() string { return c.content }

// publishSize records the natural text size so view scaling works
// like it does for images.
func (c *TextComponent) publishSize() {
	if c.content == "" {
		c.BaseViewInfo.ImageWidth = 0
		c.BaseViewInfo.ImageHeight = 0
		return
	}
	w, h := text.Measure(c.content, c.activeFace(), 0)
	c.BaseViewInfo.ImageWidth = w
	c.BaseViewInfo.ImageHeight = h
}

func (c *TextComponent) activeFace() text.Face {
	if c.BaseViewInfo.Font != nil {
		return c.BaseViewInfo.Font
	}
	return c.face
}

// Draw renders the string through the view transform.
func (c *TextComponent) Draw(screen *ebiten.Image) {
	c.Base.Draw(screen)
	if c.content == "" || c.BaseViewInfo.Alpha <= 0 {
		return
	}

	face := c.activeFace()
	w, h := text.Measure(c.content, face, 0)
	if w <= 0 || h <= 0 {
		return
	}

	op := &text.DrawOptions{}
	sw := c.BaseViewInfo.ScaledWidth()
	sh := c.BaseViewInfo.ScaledHeight()
	if sw > 0 && sh > 0 {
		op.GeoM.Scale(sw/w, sh/h)
	}
	op.GeoM.Translate(c.BaseViewInfo.XRelativeToOrigin(), c.BaseViewInfo.YRelativeToOrigin())
	op.ColorScale.ScaleAlpha(float32(c.BaseViewInfo.Alpha))
	text.Draw(screen, c.content, face, op)
}
