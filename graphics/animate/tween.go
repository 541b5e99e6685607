package animate

import "strings"

// Property names a view attribute a tween drives. Restart and Nop are
// control properties that do not touch the view directly.
type Property int

const (
	PropertyX Property = iota
	PropertyY
	PropertyAngle
	PropertyAlpha
	PropertyWidth
	PropertyHeight
	PropertyXOrigin
	PropertyYOrigin
	PropertyXOffset
	PropertyYOffset
	PropertyFontSize
	PropertyBackgroundAlpha
	PropertyMaxWidth
	PropertyMaxHeight
	PropertyLayer
	PropertyContainerX
	PropertyContainerY
	PropertyContainerWidth
	PropertyContainerHeight
	PropertyVolume
	PropertyMonitor
	PropertyNop
	PropertyRestart
	propertyCount
)

var propertyNames = map[string]Property{
	"x":               PropertyX,
	"y":               PropertyY,
	"angle":           PropertyAngle,
	"alpha":           PropertyAlpha,
	"width":           PropertyWidth,
	"height":          PropertyHeight,
	"xorigin":         PropertyXOrigin,
	"yorigin":         PropertyYOrigin,
	"xoffset":         PropertyXOffset,
	"yoffset":         PropertyYOffset,
	"fontsize":        PropertyFontSize,
	"backgroundalpha": PropertyBackgroundAlpha,
	"maxwidth":        PropertyMaxWidth,
	"maxheight":       PropertyMaxHeight,
	"layer":           PropertyLayer,
	"containerx":      PropertyContainerX,
	"containery":      PropertyContainerY,
	"containerwidth":  PropertyContainerWidth,
	"containerheight": PropertyContainerHeight,
	"volume":          PropertyVolume,
	"monitor":         PropertyMonitor,
	"nop":             PropertyNop,
	"restart":         PropertyRestart,
}

// ParseProperty resolves a layout attribute name to a Property. Names
// are matched case-insensitively.
func ParseProperty(name string) (Property, bool) {
	p, ok := propertyNames[strings.ToLower(name)]
	return p, ok
}

// ParseAlgorithm resolves an easing name case-insensitively. Unknown
// names fall back to Linear.
func ParseAlgorithm(name string) Algorithm {
	if a, ok := algorithmNames[strings.ToLower(name)]; ok {
		return a
	}
	return Linear
}

// Tween interpolates one property from Start to End over Duration
// seconds. When StartDefined is false the component substitutes the
// property's current value for Start on playback. PlaylistFilter, when
// non-empty, restricts the tween to the named playlists.
type Tween struct {
	Property       Property
	Algorithm      Algorithm
	Start          float64
	End            float64
	Duration       float64
	StartDefined   bool
	PlaylistFilter string
}

// Reinit resets a recycled tween to the given parameters.
func (t *Tween) Reinit(property Property, algorithm Algorithm, start, end, duration float64) {
	t.Property = property
	t.Algorithm = algorithm
	t.Start = start
	t.End = end
	t.Duration = duration
	t.StartDefined = true
	t.PlaylistFilter = ""
}

// Animate returns the tween's value at elapsed seconds.
func (t *Tween) Animate(elapsed float64) float64 {
	return t.AnimateFrom(t.Start, elapsed)
}

// AnimateFrom returns the tween's value at elapsed seconds, overriding
// the start value. Elapsed time is clamped to the duration and a
// non-positive duration commits immediately to End.
func (t *Tween) AnimateFrom(start, elapsed float64) float64 {
	if t.Duration <= 0 {
		return t.End
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > t.Duration {
		elapsed = t.Duration
	}
	return Ease(t.Algorithm, elapsed, t.Duration, start, t.End-start)
}
