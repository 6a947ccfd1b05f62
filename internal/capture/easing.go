package capture

import "math"

// Easing maps linear progress in [0,1] to eased progress.
// Every curve returns 0 at 0 and 1 at 1.
type Easing func(t float64) float64

// Linear leaves progress untouched
func Linear(t float64) float64 {
	return t
}

// Bounce drops onto the target and bounces three times before settling
func Bounce(t float64) float64 {
	const n = 7.5625
	switch {
	case t < 1/2.75:
		return n * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return n*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return n*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return n*t*t + 0.984375
	}
}

// Ease is the default slow-start curve, cubic-bezier(0.42, 0, 1, 1)
var Ease = CubicBezier(0.42, 0, 1, 1)

// CubicBezier returns the timing curve with control points (x1,y1) and (x2,y2),
// as used by CSS transitions. x1 and x2 must lie in [0,1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	// Polynomial coefficients for B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < 8; i++ {
			err := sampleX(s) - x
			if math.Abs(err) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}

		// Newton stalled, fall back to bisection
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 64 && hi-lo > 1e-9; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				return s
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}
