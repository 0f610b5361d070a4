package sketch

import "errors"

var (
	// ErrIntersectionUndefined is returned when two lines have no single
	// intersection point because they are parallel or coincident. It is also
	// the cause of Circumcenter and NewArc failures on collinear points.
	ErrIntersectionUndefined = errors.New("sketch: intersection undefined: lines are parallel")

	// ErrEmptyPolygon is returned by NewPolygon when no points are given.
	ErrEmptyPolygon = errors.New("sketch: polygon needs at least one point")

	// ErrNilShape is returned by the renderer when asked to draw a nil shape.
	ErrNilShape = errors.New("sketch: nil shape")
)
