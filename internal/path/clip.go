package path

import (
	"math"

	"github.com/gogpu/sketch"
)

// Finite reports whether both coordinates of p are finite.
func Finite(p sketch.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ClipSegment clips the segment from a to b to the rectangle spanned by lo
// and hi (Liang-Barsky). ok is false when no part of the segment lies in
// the rectangle or the segment is not finite.
func ClipSegment(a, b, lo, hi sketch.Point) (sketch.Point, sketch.Point, bool) {
	d := sketch.VectorBetween(a, b)
	if !Finite(a) || !Finite(b) || !Finite(sketch.Pt(d.U, d.V)) {
		return a, b, false
	}

	t0, t1 := 0.0, 1.0
	for _, e := range [4]struct{ p, q float64 }{
		{-d.U, a.X - lo.X},
		{d.U, hi.X - a.X},
		{-d.V, a.Y - lo.Y},
		{d.V, hi.Y - a.Y},
	} {
		if e.p == 0 {
			if e.q < 0 {
				return a, b, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}
