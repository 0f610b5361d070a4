package sketch

import (
	"math"
	"slices"
)

// ShapeKind identifies the variant of a Shape.
type ShapeKind uint8

const (
	KindSegment ShapeKind = iota
	KindPolygon
	KindCircle
	KindArc
	KindRectangle
)

var shapeKindNames = [...]string{
	KindSegment:   "segment",
	KindPolygon:   "polygon",
	KindCircle:    "circle",
	KindArc:       "arc",
	KindRectangle: "rectangle",
}

// String returns the lower-case name of the kind.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "unknown"
}

// Shape is a geometric description that the renderer can draw.
//
// The set of shapes is closed: Segment, Polygon, Circle, Arc and Rectangle
// are the only implementations. Shapes are immutable values.
type Shape interface {
	// Kind returns the variant tag of the shape.
	Kind() ShapeKind

	isShape()
}

// Sweep is the direction in which an arc travels from its start angle to
// its end angle, in the coordinate frame of its points.
type Sweep uint8

const (
	// SweepPositive travels towards increasing angle.
	SweepPositive Sweep = iota
	// SweepNegative travels towards decreasing angle.
	SweepNegative
)

// String returns "positive" or "negative".
func (s Sweep) String() string {
	if s == SweepNegative {
		return "negative"
	}
	return "positive"
}

// Segment is a straight line from Start to End.
type Segment struct {
	Start, End Point
}

// Polygon is a closed chain of points. It always holds at least one point
// when built with NewPolygon.
type Polygon struct {
	Points []Point
}

// Circle is a full circle. Radius is expected to be non-negative but is not
// validated.
type Circle struct {
	Center Point
	Radius float64
}

// Arc is a circular arc derived from three points. Angles are in radians in
// [0, 2π), measured from Center in the frame of the defining points.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Sweep      Sweep
}

// Rectangle is an axis-aligned rectangle stored exactly as given. When
// BottomRight is not below and right of TopLeft the rectangle has a negative
// width or height.
type Rectangle struct {
	TopLeft, BottomRight Point
}

func (Segment) Kind() ShapeKind   { return KindSegment }
func (Polygon) Kind() ShapeKind   { return KindPolygon }
func (Circle) Kind() ShapeKind    { return KindCircle }
func (Arc) Kind() ShapeKind       { return KindArc }
func (Rectangle) Kind() ShapeKind { return KindRectangle }

func (Segment) isShape()   {}
func (Polygon) isShape()   {}
func (Circle) isShape()    {}
func (Arc) isShape()       {}
func (Rectangle) isShape() {}

// NewSegment creates a segment from a to b.
func NewSegment(a, b Point) Segment {
	return Segment{Start: a, End: b}
}

// NewPolygon creates a polygon from its vertices in drawing order.
// The points are copied. One or two points are accepted and give a
// degenerate polygon; zero points return ErrEmptyPolygon.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) == 0 {
		return Polygon{}, ErrEmptyPolygon
	}
	return Polygon{Points: slices.Clone(points)}, nil
}

// NewCircle creates a circle.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// NewArc creates the arc of the circle through a, b and c that starts at a
// and ends at c. The sweep is chosen so that the arc passes through b; b is
// not an endpoint.
//
// Collinear points have no such circle and return an error wrapping
// ErrIntersectionUndefined.
func NewArc(a, b, c Point) (Arc, error) {
	center, err := Circumcenter(a, b, c)
	if err != nil {
		return Arc{}, err
	}

	sweep := SweepPositive
	if VectorBetween(a, b).Cross(VectorBetween(b, c)) < 0 {
		sweep = SweepNegative
	}

	return Arc{
		Center:     center,
		Radius:     Distance(a, center),
		StartAngle: AngleOf(VectorBetween(center, a)),
		EndAngle:   AngleOf(VectorBetween(center, c)),
		Sweep:      sweep,
	}, nil
}

// NewRectangle creates a rectangle from its top-left and bottom-right
// corners.
func NewRectangle(topLeft, bottomRight Point) Rectangle {
	return Rectangle{TopLeft: topLeft, BottomRight: bottomRight}
}

// Size returns the signed width and height of the rectangle.
func (r Rectangle) Size() (width, height float64) {
	return r.BottomRight.X - r.TopLeft.X, r.BottomRight.Y - r.TopLeft.Y
}

// Span returns the signed angle the arc covers, following its sweep.
// The result is in [0, 2π) for positive sweeps and (-2π, 0] for negative
// sweeps.
func (a Arc) Span() float64 {
	d := a.EndAngle - a.StartAngle
	if a.Sweep == SweepNegative {
		if d > 0 {
			d -= 2 * math.Pi
		}
		return d
	}
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// PointAt returns the point of the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}
