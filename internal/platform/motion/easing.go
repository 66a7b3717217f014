package motion

import (
	"math"
	"strconv"
)

const (
	easingEpsilon     = 1e-7
	newtonIterations  = 8
	bisectIterations  = 64
	minSlopeMagnitude = 1e-6
)

// Easing maps linear progress in [0,1] to eased progress using a cubic Bézier
// timing curve anchored at (0,0) and (1,1), the same model CSS uses.
type Easing struct {
	name           string
	x1, y1, x2, y2 float64
}

// Named timing curves shared with CSS.
var (
	Linear    = Easing{name: "linear", x1: 0, y1: 0, x2: 1, y2: 1}
	EaseIn    = Easing{name: "ease-in", x1: 0.42, y1: 0, x2: 1, y2: 1}
	EaseOut   = Easing{name: "ease-out", x1: 0, y1: 0, x2: 0.58, y2: 1}
	EaseInOut = Easing{name: "ease-in-out", x1: 0.42, y1: 0, x2: 0.58, y2: 1}
)

// CubicBezier returns a custom timing curve. x1 and x2 are clamped to [0,1]
// so the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return Easing{x1: clamp01(x1), y1: y1, x2: clamp01(x2), y2: y2}
}

// Name returns the CSS keyword for named curves and "" for custom curves.
func (e Easing) Name() string {
	return e.name
}

// CSS renders the curve as a CSS timing function.
func (e Easing) CSS() string {
	if e.isZero() {
		return Linear.name
	}
	if e.name != "" {
		return e.name
	}
	return "cubic-bezier(" + formatFloat(e.x1) + ", " + formatFloat(e.y1) + ", " + formatFloat(e.x2) + ", " + formatFloat(e.y2) + ")"
}

// Apply returns eased progress for linear progress x.
func (e Easing) Apply(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if e.isZero() || (e.x1 == e.y1 && e.x2 == e.y2) {
		return x
	}
	return bezier(e.solveT(x), e.y1, e.y2)
}

func (e Easing) isZero() bool {
	return e == Easing{}
}

// solveT finds the curve parameter whose x coordinate equals x.
func (e Easing) solveT(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		dx := bezier(t, e.x1, e.x2) - x
		if math.Abs(dx) < easingEpsilon {
			return t
		}
		slope := bezierSlope(t, e.x1, e.x2)
		if math.Abs(slope) < minSlopeMagnitude {
			break
		}
		t -= dx / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bisectIterations; i++ {
		v := bezier(t, e.x1, e.x2)
		if math.Abs(v-x) < easingEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
