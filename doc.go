// Package sketch provides 2D construction geometry and a renderer adapter
// for canvas-like drawing surfaces.
//
// # Overview
//
// sketch turns declarative geometric descriptions (segments, polygons,
// circles, arcs and rectangles built from points) into primitive draw calls
// on any [Surface]: an interface with the same shape as the HTML Canvas path
// API (BeginPath, MoveTo, LineTo, Arc, ClosePath, StrokeRect, Stroke).
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	// An arc through three points; the solver finds the circle.
//	arc, err := sketch.NewArc(sketch.Pt(0, 0), sketch.Pt(2, 0), sketch.Pt(0, 2))
//	if err != nil {
//	    // collinear points: no circle passes through them
//	}
//
//	// Draw it on any Surface, e.g. a recording.Recorder.
//	rec := recording.NewRecorder(800, 600)
//	_ = sketch.Draw(rec, arc)
//
// # Architecture
//
// The package is organized into:
//   - Geometry primitives: Point, Vector, AngleOf, Distance, Midpoint
//   - Analytic solver: Line (sloped or vertical), Bisector, Intersect,
//     Circumcenter
//   - Shape model: Segment, Polygon, Circle, Arc, Rectangle
//   - Renderer adapter: Surface, Renderer, Draw
//
// Sub-packages build on top of it:
//   - scene: textual shape descriptions parsed into ordered scenes
//   - recording: a Surface that records commands and replays them onto
//     registered backends (raster, display, ebiten)
//
// # Coordinate System
//
// Geometry is convention-agnostic: angles are measured with atan2 in the
// coordinate frame of the points, in [0, 2π). Surfaces use canvas
// coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arcs sweep towards increasing angle unless counterClockwise is set
//
// By default shape coordinates are taken to be surface coordinates. Use
// [WithYUp] when shapes are expressed in mathematical (y-up) coordinates;
// the renderer then flips points, negates angles and inverts sweeps.
//
// # Errors
//
// Constructing an arc from collinear points fails with an error wrapping
// [ErrIntersectionUndefined]. Degenerate inputs (zero-length vectors, zero
// or negative radii, unordered rectangle corners, one-point polygons) are
// accepted and produce degenerate output.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
