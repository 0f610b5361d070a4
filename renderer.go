package sketch

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"deedles.dev/xiter"
	mt "github.com/rustyoz/Mtransform"
)

// Renderer draws shapes onto a Surface. It owns the conversion from the
// coordinate frame of the shapes to the surface's canvas conventions, so
// that geometry code never has to know which way the y axis points.
//
// A Renderer is immutable after creation and safe for concurrent use;
// the surfaces it draws on generally are not.
type Renderer struct {
	yUp       bool
	height    float64
	transform *mt.Transform
	logger    *slog.Logger

	frame frame
}

// frame describes how the device mapping acts on directions: the angle of
// the mapped x axis, the length it is scaled to and whether the mapping
// reverses orientation.
type frame struct {
	rotation float64
	scale    float64
	reflect  bool
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		yUp:       o.yUp,
		height:    o.height,
		transform: o.transform,
		logger:    o.logger,
	}
	r.frame = r.deriveFrame()
	return r
}

// defaultRenderer is used by Draw.
var defaultRenderer = NewRenderer()

// Draw draws shape onto s using canvas conventions (shape coordinates are
// surface coordinates). It is shorthand for NewRenderer().Draw(s, shape).
func Draw(s Surface, shape Shape) error {
	return defaultRenderer.Draw(s, shape)
}

// Draw emits the primitive calls for shape onto s: one BeginPath, the
// path construction for the shape, then one Stroke. Rectangles are drawn
// with StrokeRect inside the same BeginPath/Stroke pair.
//
// Draw performs no geometry that can fail. It returns ErrNilShape for a nil
// shape, and otherwise only the error reported by the surface, if the
// surface implements Err() error.
func (r *Renderer) Draw(s Surface, shape Shape) error {
	if shape == nil {
		return ErrNilShape
	}

	r.log().Debug("sketch: draw", slog.String("kind", shape.Kind().String()))

	s.BeginPath()
	switch sh := shape.(type) {
	case Segment:
		r.drawSegment(s, sh)
	case Polygon:
		r.drawPolygon(s, sh)
	case Circle:
		r.drawArc(s, sh.Center, sh.Radius, 0, 2*math.Pi, SweepPositive)
	case Arc:
		r.drawArc(s, sh.Center, sh.Radius, sh.StartAngle, sh.EndAngle, sh.Sweep)
	case Rectangle:
		r.drawRectangle(s, sh)
	default:
		// Unreachable: Shape is sealed.
		panic(fmt.Sprintf("sketch: unhandled shape %T", shape))
	}
	s.Stroke()

	if er, ok := s.(errReporter); ok {
		if err := er.Err(); err != nil {
			return fmt.Errorf("sketch: draw %s: %w", shape.Kind(), err)
		}
	}
	return nil
}

func (r *Renderer) drawSegment(s Surface, seg Segment) {
	start := r.toDevice(seg.Start)
	end := r.toDevice(seg.End)
	s.MoveTo(start.X, start.Y)
	s.LineTo(end.X, end.Y)
}

func (r *Renderer) drawPolygon(s Surface, poly Polygon) {
	if len(poly.Points) == 0 {
		r.log().Debug("sketch: empty polygon")
		return
	}
	for i, p := range xiter.Enumerate(slices.Values(poly.Points)) {
		d := r.toDevice(p)
		if i == 0 {
			s.MoveTo(d.X, d.Y)
			continue
		}
		s.LineTo(d.X, d.Y)
	}
	s.ClosePath()
}

// drawArc converts an arc from shape space to surface space. Angles are
// rotated by the frame rotation and negated when the mapping reflects; a
// reflection also reverses the sweep.
func (r *Renderer) drawArc(s Surface, center Point, radius, start, end float64, sweep Sweep) {
	c := r.toDevice(center)
	f := r.frame

	if f.reflect {
		start, end = f.rotation-start, f.rotation-end
	} else {
		start, end = f.rotation+start, f.rotation+end
	}
	counterClockwise := (sweep == SweepNegative) != f.reflect

	s.Arc(c.X, c.Y, radius*f.scale, start, end, counterClockwise)
}

func (r *Renderer) drawRectangle(s Surface, rect Rectangle) {
	tl := r.toDevice(rect.TopLeft)
	br := r.toDevice(rect.BottomRight)
	s.StrokeRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
}

// toDevice maps a point from shape space to surface space.
func (r *Renderer) toDevice(p Point) Point {
	if r.yUp {
		p.Y = r.height - p.Y
	}
	if r.transform != nil {
		p.X, p.Y = r.transform.Apply(p.X, p.Y)
	}
	return p
}

// deriveFrame measures the device mapping on the unit basis vectors.
func (r *Renderer) deriveFrame() frame {
	if !r.yUp && r.transform == nil {
		return frame{scale: 1}
	}
	o := r.toDevice(Point{})
	ex := VectorBetween(o, r.toDevice(Point{X: 1}))
	ey := VectorBetween(o, r.toDevice(Point{Y: 1}))
	return frame{
		rotation: math.Atan2(ex.V, ex.U),
		scale:    ex.Length(),
		reflect:  ex.Cross(ey) < 0,
	}
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}
