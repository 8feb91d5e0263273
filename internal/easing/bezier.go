package easing

import (
	"fmt"
	"math"
)

// CubicBezier is a CSS-style timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Curves understood by renderers with native transitions.
// See https://developer.mozilla.org/en-US/docs/Web/CSS/easing-function
var coarse = map[Kind]CubicBezier{
	Linear:    {0, 0, 1, 1},
	Ease:      {0.25, 0.1, 0.25, 1},
	EaseIn:    {0.42, 0, 1, 1},
	EaseOut:   {0, 0, 0.58, 1},
	EaseInOut: {0.42, 0, 0.58, 1},
}

// BezierOf returns the cubic-bezier form of k. Only the coarse CSS curves
// have one; quad and cubic kinds report false.
func BezierOf(k Kind) (CubicBezier, bool) {
	c, ok := coarse[k]
	return c, ok
}

func (c CubicBezier) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", c.X1, c.Y1, c.X2, c.Y2)
}

// At returns the curve's y for progress x.
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if c.X1 == c.Y1 && c.X2 == c.Y2 {
		return x
	}
	return sample(c.Y1, c.Y2, c.solve(x))
}

const (
	newtonIterations = 8
	solveEpsilon     = 1e-7
)

// solve finds the curve parameter whose x equals target.
func (c CubicBezier) solve(target float64) float64 {
	s := target
	for range newtonIterations {
		x := sample(c.X1, c.X2, s) - target
		if math.Abs(x) < solveEpsilon {
			return s
		}
		d := slope(c.X1, c.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
	}

	lo, hi := 0.0, 1.0
	s = target
	for lo < hi {
		x := sample(c.X1, c.X2, s)
		if math.Abs(x-target) < solveEpsilon {
			return s
		}
		if target > x {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}

// sample evaluates one axis of the curve at parameter s.
func sample(p1, p2, s float64) float64 {
	a := 1 - 3*p2 + 3*p1
	b := 3*p2 - 6*p1
	cc := 3 * p1
	return ((a*s+b)*s + cc) * s
}

func slope(p1, p2, s float64) float64 {
	a := 1 - 3*p2 + 3*p1
	b := 3*p2 - 6*p1
	cc := 3 * p1
	return 3*a*s*s + 2*b*s + cc
}
