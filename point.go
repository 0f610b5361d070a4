package sketch

import "math"

// Point represents a position in the plane.
// Points are plain values; NaN and infinite coordinates are carried through
// every operation unchanged.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p displaced by the vector v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.U, Y: p.Y + v.V}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return VectorBetween(q, p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Approx returns true if two points are equal within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// Distance returns the Euclidean distance between a and b.
// It is symmetric: Distance(a, b) == Distance(b, a).
func Distance(a, b Point) float64 {
	return VectorBetween(a, b).Length()
}

// Midpoint returns the midpoint of the segment from a to b.
func Midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
	}
}
