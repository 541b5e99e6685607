// Package graphics implements the animated scene: view attributes,
// the component tree, the scrolling menu list, and the page that
// composes them into layered draw order.
package graphics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/CoinOPS-Official/retrofe/graphics/animate"
)

// Alignment sentinels usable in place of coordinates by layouts.
const (
	AlignCenter = -1
	AlignLeft   = -2
	AlignTop    = -3
	AlignRight  = -4
	AlignBottom = -5
)

// ViewInfo is the mutable attribute bag animation drives each frame.
// Width or Height below zero means "derive from the natural image
// size".
type ViewInfo struct {
	X       float64
	Y       float64
	XOrigin float64
	YOrigin float64
	XOffset float64
	YOffset float64

	Width     float64
	MinWidth  float64
	MaxWidth  float64
	Height    float64
	MinHeight float64
	MaxHeight float64

	// ImageWidth and ImageHeight are the natural dimensions published
	// by the component's media.
	ImageWidth  float64
	ImageHeight float64

	FontSize float64
	Font     text.Face

	Angle float64
	Alpha float64
	Layer int

	BackgroundRed   float64
	BackgroundGreen float64
	BackgroundBlue  float64
	BackgroundAlpha float64

	Reflection         string
	ReflectionDistance int
	ReflectionScale    float64
	ReflectionAlpha    float64

	ContainerX      float64
	ContainerY      float64
	ContainerWidth  float64
	ContainerHeight float64

	Monitor int
	Volume  float64

	// Restart is a one-frame pulse telling a video component to seek
	// back to the start.
	Restart bool

	Additive      bool
	PauseOnScroll bool
}

// NewViewInfo returns a ViewInfo with the defaults layouts expect.
func NewViewInfo() ViewInfo {
	return ViewInfo{
		Width:           -1,
		Height:          -1,
		MaxWidth:        math.MaxFloat64,
		MaxHeight:       math.MaxFloat64,
		FontSize:        -1,
		Alpha:           1,
		ReflectionScale: 0.25,
		ReflectionAlpha: 1,
		ContainerWidth:  -1,
		ContainerHeight: -1,
		PauseOnScroll:   true,
	}
}

// XRelativeToOrigin returns the left drawing edge after origin and
// offset are applied.
func (v *ViewInfo) XRelativeToOrigin() float64 {
	return v.X + v.XOffset - v.XOrigin*v.ScaledWidth()
}

// YRelativeToOrigin returns the top drawing edge after origin and
// offset are applied.
func (v *ViewInfo) YRelativeToOrigin() float64 {
	return v.Y + v.YOffset - v.YOrigin*v.ScaledHeight()
}

// ScaledWidth returns the draw width after min/max clamping with
// aspect preservation against the height.
func (v *ViewInfo) ScaledWidth() float64 {
	return scaleDimension(v.absoluteWidth(), v.MinWidth, v.MaxWidth, v.absoluteHeight(), true)
}

// ScaledHeight returns the draw height after min/max clamping with
// aspect preservation against the width.
func (v *ViewInfo) ScaledHeight() float64 {
	return scaleDimension(v.absoluteHeight(), v.MinHeight, v.MaxHeight, v.absoluteWidth(), false)
}

func scaleDimension(size, minSize, maxSize, otherSize float64, isWidth bool) float64 {
	if size < minSize {
		if otherSize >= minSize {
			return minSize
		}
		if isWidth {
			return minSize
		}
		if otherSize == 0 {
			return minSize
		}
		return size * minSize / otherSize
	}
	if size > maxSize {
		if otherSize <= maxSize {
			return maxSize
		}
		if isWidth {
			return size * maxSize / otherSize
		}
		return maxSize
	}
	return size
}

func (v *ViewInfo) absoluteWidth() float64 {
	if v.Height < 0 && v.Width < 0 {
		return v.ImageWidth
	}
	if v.Width < 0 && v.ImageHeight != 0 {
		return v.ImageWidth * v.Height / v.ImageHeight
	}
	return v.Width
}

func (v *ViewInfo) absoluteHeight() float64 {
	if v.Height < 0 && v.Width < 0 {
		return v.ImageHeight
	}
	if v.Height < 0 && v.ImageWidth != 0 {
		return v.ImageHeight * v.Width / v.ImageWidth
	}
	return v.Height
}

// property reads the field a tween property drives. Integral fields
// come back widened to float64.
func (v *ViewInfo) property(p animate.Property) float64 {
	switch p {
	case animate.PropertyX:
		return v.X
	case animate.PropertyY:
		return v.Y
	case animate.PropertyAngle:
		return v.Angle
	case animate.PropertyAlpha:
		return v.Alpha
	case animate.PropertyWidth:
		return v.Width
	case animate.PropertyHeight:
		return v.Height
	case animate.PropertyXOrigin:
		return v.XOrigin
	case animate.PropertyYOrigin:
		return v.YOrigin
	case animate.PropertyXOffset:
		return v.XOffset
	case animate.PropertyYOffset:
		return v.YOffset
	case animate.PropertyFontSize:
		return v.FontSize
	case animate.PropertyBackgroundAlpha:
		return v.BackgroundAlpha
	case animate.PropertyMaxWidth:
		return v.MaxWidth
	case animate.PropertyMaxHeight:
		return v.MaxHeight
	case animate.PropertyLayer:
		return float64(v.Layer)
	case animate.PropertyContainerX:
		return v.ContainerX
	case animate.PropertyContainerY:
		return v.ContainerY
	case animate.PropertyContainerWidth:
		return v.ContainerWidth
	case animate.PropertyContainerHeight:
		return v.ContainerHeight
	case animate.PropertyVolume:
		return v.Volume
	case animate.PropertyMonitor:
		return float64(v.Monitor)
	}
	return 0
}

// setProperty commits a tween value to its field. Integral fields are
// truncated; Nop and Restart are handled by the caller.
func (v *ViewInfo) setProperty(p animate.Property, value float64) {
	switch p {
	case animate.PropertyX:
		v.X = value
	case animate.PropertyY:
		v.Y = value
	case animate.PropertyAngle:
		v.Angle = value
	case animate.PropertyAlpha:
		v.Alpha = value
	case animate.PropertyWidth:
		v.Width = value
	case animate.PropertyHeight:
		v.Height = value
	case animate.PropertyXOrigin:
		v.XOrigin = value
	case animate.PropertyYOrigin:
		v.YOrigin = value
	case animate.PropertyXOffset:
		v.XOffset = value
	case animate.PropertyYOffset:
		v.YOffset = value
	case animate.PropertyFontSize:
		v.FontSize = value
	case animate.PropertyBackgroundAlpha:
		v.BackgroundAlpha = value
	case animate.PropertyMaxWidth:
		v.MaxWidth = value
	case animate.PropertyMaxHeight:
		v.MaxHeight = value
	case animate.PropertyLayer:
		v.Layer = int(value)
	case animate.PropertyContainerX:
		v.ContainerX = value
	case animate.PropertyContainerY:
		v.ContainerY = value
	case animate.PropertyContainerWidth:
		v.ContainerWidth = value
	case animate.PropertyContainerHeight:
		v.ContainerHeight = value
	case animate.PropertyVolume:
		v.Volume = value
	case animate.PropertyMonitor:
		v.Monitor = int(value)
	}
}
