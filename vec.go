package sketch

import "math"

// Vector represents a 2D displacement.
// Unlike Point which represents a position, Vector carries a direction and
// magnitude. It is never normalized implicitly.
type Vector struct {
	U, V float64
}

// Vec is a convenience function to create a Vector.
func Vec(u, v float64) Vector {
	return Vector{U: u, V: v}
}

// VectorBetween returns the vector from a to b.
// Order matters: VectorBetween(a, b) is the negation of VectorBetween(b, a).
func VectorBetween(a, b Point) Vector {
	return Vector{
		U: b.X - a.X,
		V: b.Y - a.Y,
	}
}

// Perpendicular returns v rotated by 90 degrees counter-clockwise
// (in mathematical orientation).
func Perpendicular(v Vector) Vector {
	return Vector{U: -v.V, V: v.U}
}

// AngleOf returns the angle of v in radians, normalized to [0, 2π).
// The zero vector has angle 0.
func AngleOf(v Vector) float64 {
	angle := math.Atan2(v.V, v.U)
	if angle < 0 {
		angle += 2 * math.Pi
		// A tiny negative angle rounds up to exactly 2π.
		if angle >= 2*math.Pi {
			angle = 0
		}
	}
	return angle
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vector) Perp() Vector {
	return Perpendicular(v)
}

// Angle returns the angle of the vector in [0, 2π).
func (v Vector) Angle() float64 {
	return AngleOf(v)
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{U: -v.U, V: -v.V}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{U: v.U * s, V: v.V * s}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.U*w.U + v.V*w.V
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0; its sign tells
// whether w turns counter-clockwise (positive) or clockwise (negative) from v.
func (v Vector) Cross(w Vector) float64 {
	return v.U*w.V - v.V*w.U
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.U, v.V)
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.U == 0 && v.V == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.U-w.U) < epsilon && math.Abs(v.V-w.V) < epsilon
}
