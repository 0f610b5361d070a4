// Package path models canvas paths for backends that rasterize themselves.
//
// A Path follows the HTML Canvas path model: MoveTo starts a subpath,
// LineTo and Arc extend the current one (starting it if needed), and
// ClosePath marks it closed so the next segment starts from its first
// point. Arcs are flattened into line segments on the fly.
package path

import (
	"math"

	"github.com/gogpu/sketch"
)

// Tolerance is the maximum distance between a flattened arc and the true
// circle, in pixels.
const Tolerance = 0.25

// MaxArcSegments bounds the number of segments one arc flattens into.
const MaxArcSegments = 1 << 14

// Subpath is a polyline, closed or open.
type Subpath struct {
	Points []sketch.Point
	Closed bool
}

// Edges calls fn for every edge of the subpath, including the closing edge
// of a closed subpath.
func (s Subpath) Edges(fn func(a, b sketch.Point)) {
	for i := 1; i < len(s.Points); i++ {
		fn(s.Points[i-1], s.Points[i])
	}
	if s.Closed && len(s.Points) > 1 {
		fn(s.Points[len(s.Points)-1], s.Points[0])
	}
}

// Path accumulates subpaths. The zero value is an empty path.
type Path struct {
	subpaths []Subpath
	// open is true while the last subpath accepts new points.
	open bool
}

// Reset discards all subpaths.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
	p.open = false
}

// Subpaths returns the subpaths built so far. Subpaths with a single point
// are included.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []sketch.Point{sketch.Pt(x, y)}})
	p.open = true
}

// LineTo adds a line to (x, y). Without a current point it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.ensureOpen() {
		p.MoveTo(x, y)
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.Points = append(last.Points, sketch.Pt(x, y))
}

// ClosePath closes the current subpath. The next segment starts a new
// subpath at the closed subpath's first point.
func (p *Path) ClosePath() {
	if !p.open {
		return
	}
	p.subpaths[len(p.subpaths)-1].Closed = true
	p.open = false
}

// Arc adds a flattened circular arc in canvas conventions, joined to the
// current point by a straight line.
func (p *Path) Arc(x, y, radius, start, end float64, counterClockwise bool) {
	for _, pt := range FlattenArc(x, y, radius, start, end, counterClockwise, Tolerance) {
		p.LineTo(pt.X, pt.Y)
	}
}

// ensureOpen reopens a subpath at the first point of a closed one.
func (p *Path) ensureOpen() bool {
	if p.open {
		return true
	}
	if len(p.subpaths) == 0 {
		return false
	}
	first := p.subpaths[len(p.subpaths)-1].Points[0]
	p.MoveTo(first.X, first.Y)
	return true
}

// ArcSweep returns the signed angle a canvas arc covers from start to end.
// Clockwise arcs (counterClockwise false) sweep towards increasing angle.
// A difference of a full turn or more draws the full circle.
func ArcSweep(start, end float64, counterClockwise bool) float64 {
	const tau = 2 * math.Pi
	if !counterClockwise {
		d := end - start
		if d >= tau {
			return tau
		}
		d = math.Mod(d, tau)
		if d < 0 {
			d += tau
		}
		return d
	}
	d := start - end
	if d >= tau {
		return -tau
	}
	d = math.Mod(d, tau)
	if d < 0 {
		d += tau
	}
	return -d
}

// FlattenArc returns points along a canvas arc, from its start point to its
// end point inclusive, no further than tolerance from the circle. Huge
// radii are limited to MaxArcSegments segments and lose that guarantee.
// A radius that is not positive yields the center alone.
func FlattenArc(x, y, radius, start, end float64, counterClockwise bool, tolerance float64) []sketch.Point {
	if radius <= 0 || math.IsNaN(radius) {
		return []sketch.Point{sketch.Pt(x, y)}
	}
	sweep := ArcSweep(start, end, counterClockwise)

	n := 1
	if radius > tolerance {
		// Largest step whose chord stays within tolerance of the arc.
		step := 2 * math.Acos(1-tolerance/radius)
		if f := math.Ceil(math.Abs(sweep) / step); f < MaxArcSegments {
			n = int(f)
		} else {
			n = MaxArcSegments
		}
	}
	n = max(n, 1)

	center := sketch.Pt(x, y)
	pts := make([]sketch.Point, 0, n+1)
	for i := range n + 1 {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, center.Add(sketch.Vec(math.Cos(a), math.Sin(a)).Mul(radius)))
	}
	return pts
}

// Rect returns the closed outline of a rectangle with its corners ordered,
// so that negative widths and heights describe the same rectangle.
func Rect(x, y, width, height float64) Subpath {
	x0, x1 := min(x, x+width), max(x, x+width)
	y0, y1 := min(y, y+height), max(y, y+height)
	return Subpath{
		Points: []sketch.Point{
			sketch.Pt(x0, y0), sketch.Pt(x1, y0), sketch.Pt(x1, y1), sketch.Pt(x0, y1),
		},
		Closed: true,
	}
}
