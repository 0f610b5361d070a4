package stroke

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/path"
)

// Quad is a filled outline with four corners in drawing order.
type Quad [4]sketch.Point

// Edge expands the edge from a to b into a quad of the given width.
// Zero-length edges expand to a square centered on the point.
func Edge(a, b sketch.Point, width float64) Quad {
	h := width / 2
	d := sketch.VectorBetween(a, b)
	if l := d.Length(); l > 0 {
		d = d.Mul(1 / l)
	} else {
		d = sketch.Vec(1, 0)
	}
	along := d.Mul(h)
	across := d.Perp().Mul(h)

	a = a.Add(along.Neg())
	b = b.Add(along)
	return Quad{
		a.Add(across),
		b.Add(across),
		b.Add(across.Neg()),
		a.Add(across.Neg()),
	}
}

// SubpathWithin expands every edge of s that reaches the rectangle from lo
// to hi, clipped to it. Edges with a non-finite endpoint are dropped and
// counted in invalid. A single-point subpath expands to nothing.
//
// The rectangle should exceed the visible area by more than the width, so
// that clipped ends stay out of sight.
func SubpathWithin(s path.Subpath, width float64, lo, hi sketch.Point) (quads []Quad, invalid int) {
	s.Edges(func(a, b sketch.Point) {
		if !path.Finite(a) || !path.Finite(b) {
			invalid++
			return
		}
		if a, b, ok := path.ClipSegment(a, b, lo, hi); ok {
			quads = append(quads, Edge(a, b, width))
		}
	})
	return quads, invalid
}
