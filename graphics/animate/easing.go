package animate

import "math"

// Algorithm identifies an easing curve. The closed set mirrors the
// curves accepted by layout files; unknown names parse to Linear.
type Algorithm int

const (
	Linear Algorithm = iota
	EaseInQuadratic
	EaseOutQuadratic
	EaseInOutQuadratic
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuartic
	EaseOutQuartic
	EaseInOutQuartic
	EaseInQuintic
	EaseOutQuintic
	EaseInOutQuintic
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExponential
	EaseOutExponential
	EaseInOutExponential
	EaseInCircular
	EaseOutCircular
	EaseInOutCircular
)

var algorithmNames = map[string]Algorithm{
	"linear":               Linear,
	"easeinquadratic":      EaseInQuadratic,
	"easeoutquadratic":     EaseOutQuadratic,
	"easeinoutquadratic":   EaseInOutQuadratic,
	"easeincubic":          EaseInCubic,
	"easeoutcubic":         EaseOutCubic,
	"easeinoutcubic":       EaseInOutCubic,
	"easeinquartic":        EaseInQuartic,
	"easeoutquartic":       EaseOutQuartic,
	"easeinoutquartic":     EaseInOutQuartic,
	"easeinquintic":        EaseInQuintic,
	"easeoutquintic":       EaseOutQuintic,
	"easeinoutquintic":     EaseInOutQuintic,
	"easeinsine":           EaseInSine,
	"easeoutsine":          EaseOutSine,
	"easeinoutsine":        EaseInOutSine,
	"easeinexponential":    EaseInExponential,
	"easeoutexponential":   EaseOutExponential,
	"easeinoutexponential": EaseInOutExponential,
	"easeincircular":       EaseInCircular,
	"easeoutcircular":      EaseOutCircular,
	"easeinoutcircular":    EaseInOutCircular,
}

// easingFunc maps elapsed time t over duration d from beginning b by
// change c. All variants return b+c exactly when t == d.
type easingFunc func(t, d, b, c float64) float64

var easings = map[Algorithm]easingFunc{
	Linear:               easeLinear,
	EaseInQuadratic:      easeInQuadratic,
	EaseOutQuadratic:     easeOutQuadratic,
	EaseInOutQuadratic:   easeInOutQuadratic,
	EaseInCubic:          easeInCubic,
	EaseOutCubic:         easeOutCubic,
	EaseInOutCubic:       easeInOutCubic,
	EaseInQuartic:        easeInQuartic,
	EaseOutQuartic:       easeOutQuartic,
	EaseInOutQuartic:     easeInOutQuartic,
	EaseInQuintic:        easeInQuintic,
	EaseOutQuintic:       easeOutQuintic,
	EaseInOutQuintic:     easeInOutQuintic,
	EaseInSine:           easeInSine,
	EaseOutSine:          easeOutSine,
	EaseInOutSine:        easeInOutSine,
	EaseInExponential:    easeInExponential,
	EaseOutExponential:   easeOutExponential,
	EaseInOutExponential: easeInOutExponential,
	EaseInCircular:       easeInCircular,
	EaseOutCircular:      easeOutCircular,
	EaseInOutCircular:    easeInOutCircular,
}

// Ease evaluates algorithm a at elapsed time t over duration d,
// starting from b with total change c.
func Ease(a Algorithm, t, d, b, c float64) float64 {
	f, ok := easings[a]
	if !ok {
		f = easeLinear
	}
	return f(t, d, b, c)
}

func easeLinear(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return c*t/d + b
}

func easeInQuadratic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return c*t*t + b
}

func easeOutQuadratic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return -c*t*(t-2) + b
}

func easeInOutQuadratic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func easeInCubic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return c*t*t*t + b
}

func easeOutCubic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func easeInOutCubic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func easeInQuartic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return c*t*t*t*t + b
}

func easeOutQuartic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func easeInOutQuartic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func easeInQuintic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return c*t*t*t*t*t + b
}

func easeOutQuintic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func easeInOutQuintic(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

func easeInSine(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

func easeOutSine(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

func easeInOutSine(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return -c/2*(math.Cos(math.Pi*t/d)-1) + b
}

func easeInExponential(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func easeOutExponential(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

func easeInOutExponential(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

func easeInCircular(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func easeOutCircular(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func easeInOutCircular(t, d, b, c float64) float64 {
	if d == 0 {
		return b
	}
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}
