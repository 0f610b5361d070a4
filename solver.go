package sketch

import (
	"fmt"
	"log/slog"
)

// Line is a straight line in one of two forms: SlopedLine (y = a·x + b)
// or VerticalLine (x = c). The vertical form exists so that lines parallel
// to the y axis never carry an infinite slope.
//
// Line is a closed set; only the two types in this package implement it.
type Line interface {
	isLine()
}

// SlopedLine is the line y = Slope·x + Intercept.
type SlopedLine struct {
	Slope, Intercept float64
}

// VerticalLine is the line x = X.
type VerticalLine struct {
	X float64
}

func (SlopedLine) isLine()   {}
func (VerticalLine) isLine() {}

// At returns the y coordinate of the line at x.
func (l SlopedLine) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Bisector returns the perpendicular bisector of the segment from a to b:
// the line through their midpoint, perpendicular to the segment.
// A horizontal segment yields a VerticalLine.
func Bisector(a, b Point) Line {
	m := Midpoint(a, b)
	dir := Perpendicular(VectorBetween(a, b))
	if dir.U == 0 {
		return VerticalLine{X: m.X}
	}
	s := dir.V / dir.U
	return SlopedLine{
		Slope:     s,
		Intercept: m.Y - s*m.X,
	}
}

// Intersect returns the intersection point of two lines.
//
// Lines with equal slope, including two vertical lines, are parallel or
// coincident; Intersect reports ErrIntersectionUndefined for them instead of
// producing an infinite or NaN point.
func Intersect(l1, l2 Line) (Point, error) {
	switch a := l1.(type) {
	case VerticalLine:
		switch b := l2.(type) {
		case VerticalLine:
			return Point{}, parallel(l1, l2)
		case SlopedLine:
			return Point{X: a.X, Y: b.At(a.X)}, nil
		}
	case SlopedLine:
		switch b := l2.(type) {
		case VerticalLine:
			return Point{X: b.X, Y: a.At(b.X)}, nil
		case SlopedLine:
			if a.Slope == b.Slope {
				return Point{}, parallel(l1, l2)
			}
			x := (b.Intercept - a.Intercept) / (a.Slope - b.Slope)
			return Point{X: x, Y: a.At(x)}, nil
		}
	}
	return Point{}, fmt.Errorf("sketch: cannot intersect %T with %T", l1, l2)
}

func parallel(l1, l2 Line) error {
	Logger().Debug("sketch: parallel lines",
		slog.Any("line1", l1),
		slog.Any("line2", l2))
	return ErrIntersectionUndefined
}

// Circumcenter returns the center of the circle passing through a, b and c,
// found as the intersection of the perpendicular bisectors of a–b and b–c.
//
// Collinear points have no circumcenter; the returned error then wraps
// ErrIntersectionUndefined.
func Circumcenter(a, b, c Point) (Point, error) {
	center, err := Intersect(Bisector(a, b), Bisector(b, c))
	if err != nil {
		return Point{}, fmt.Errorf("sketch: circumcenter of %v, %v, %v: %w", a, b, c, err)
	}
	return center, nil
}
