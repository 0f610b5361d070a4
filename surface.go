package sketch

// Surface is the drawing capability the renderer targets. It mirrors the
// path subset of the HTML Canvas 2D context, so any canvas-like target can
// be adapted to it.
//
// Surfaces use canvas conventions: y grows downward, angles are in radians
// and Arc sweeps towards increasing angle unless counterClockwise is true.
//
// sketch never implements Surface itself; see the recording package for a
// recorder and for raster, display and ebiten backends.
type Surface interface {
	// BeginPath starts a new, empty path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight line from the current point to (x, y).
	LineTo(x, y float64)

	// Arc adds a circular arc centered at (x, y). A line joins the current
	// point, if any, to the start of the arc.
	Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool)

	// ClosePath joins the current point back to the start of the subpath.
	ClosePath()

	// StrokeRect strokes a rectangle outline immediately, independent of
	// the current path. Width and height may be negative.
	StrokeRect(x, y, width, height float64)

	// Stroke strokes the current path.
	Stroke()
}

// errReporter is implemented by surfaces that can fail. The renderer checks
// it once after stroking.
type errReporter interface {
	Err() error
}
