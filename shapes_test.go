package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeKind_String(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{NewSegment(Pt(0, 0), Pt(1, 1)), "segment"},
		{Polygon{Points: []Point{Pt(0, 0)}}, "polygon"},
		{NewCircle(Pt(0, 0), 1), "circle"},
		{Arc{}, "arc"},
		{NewRectangle(Pt(0, 0), Pt(1, 1)), "rectangle"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Kind().String())
		})
	}
	assert.Equal(t, "unknown", ShapeKind(200).String())
}

func TestNewPolygon(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	poly, err := NewPolygon(pts...)
	require.NoError(t, err)
	assert.Equal(t, pts, poly.Points)

	// The polygon owns its points.
	pts[0] = Pt(9, 9)
	assert.Equal(t, Pt(0, 0), poly.Points[0])
}

func TestNewPolygon_Degenerate(t *testing.T) {
	one, err := NewPolygon(Pt(3, 3))
	require.NoError(t, err)
	assert.Len(t, one.Points, 1)

	two, err := NewPolygon(Pt(0, 0), Pt(1, 1))
	require.NoError(t, err)
	assert.Len(t, two.Points, 2)

	_, err = NewPolygon()
	require.ErrorIs(t, err, ErrEmptyPolygon)
}

func TestNewCircle_RadiusNotValidated(t *testing.T) {
	// A negative radius violates the caller contract but is stored as is.
	c := NewCircle(Pt(1, 2), -3)
	assert.Equal(t, -3.0, c.Radius)

	zero := NewCircle(Pt(1, 2), 0)
	assert.Equal(t, 0.0, zero.Radius)
}

func TestNewRectangle_Unordered(t *testing.T) {
	r := NewRectangle(Pt(10, 5), Pt(0, 0))
	assert.Equal(t, Pt(10, 5), r.TopLeft)
	assert.Equal(t, Pt(0, 0), r.BottomRight)

	w, h := r.Size()
	assert.Equal(t, -10.0, w)
	assert.Equal(t, -5.0, h)
}

func TestNewArc(t *testing.T) {
	arc, err := NewArc(Pt(0, 0), Pt(2, 0), Pt(0, 2))
	require.NoError(t, err)

	assert.InDelta(t, 1, arc.Center.X, eps)
	assert.InDelta(t, 1, arc.Center.Y, eps)
	assert.InDelta(t, math.Sqrt2, arc.Radius, eps)
	assert.InDelta(t, 5*math.Pi/4, arc.StartAngle, eps)
	assert.InDelta(t, 3*math.Pi/4, arc.EndAngle, eps)
	assert.Equal(t, SweepPositive, arc.Sweep)
	assert.InDelta(t, 3*math.Pi/2, arc.Span(), eps)
}

func TestNewArc_Collinear(t *testing.T) {
	_, err := NewArc(Pt(0, 0), Pt(1, 1), Pt(3, 3))
	require.ErrorIs(t, err, ErrIntersectionUndefined)
}

func TestNewArc_RoundTrip(t *testing.T) {
	triples := [][3]Point{
		{Pt(0, 0), Pt(2, 0), Pt(0, 2)},
		{Pt(0, 2), Pt(2, 0), Pt(0, 0)},
		{Pt(-4, 1), Pt(3, 6), Pt(8, -3)},
		{Pt(10, 10), Pt(10, 30), Pt(25, 20)},
	}

	for _, tr := range triples {
		arc, err := NewArc(tr[0], tr[1], tr[2])
		require.NoError(t, err)

		assert.InDelta(t, arc.Radius, Distance(tr[0], arc.Center), 1e-9)
		assert.True(t, arc.PointAt(arc.StartAngle).Approx(tr[0], 1e-6), "start of %v", tr)
		assert.True(t, arc.PointAt(arc.EndAngle).Approx(tr[2], 1e-6), "end of %v", tr)
		assert.True(t, sweepsThrough(arc, AngleOf(VectorBetween(arc.Center, tr[1]))),
			"arc %+v should pass through %v", arc, tr[1])
	}
}

func TestNewArc_SweepFollowsMiddlePoint(t *testing.T) {
	// The same endpoints with the middle point on either side of the chord
	// give opposite sweeps.
	upper, err := NewArc(Pt(-1, 0), Pt(0, 1), Pt(1, 0))
	require.NoError(t, err)
	lower, err := NewArc(Pt(-1, 0), Pt(0, -1), Pt(1, 0))
	require.NoError(t, err)

	assert.Equal(t, SweepNegative, upper.Sweep)
	assert.Equal(t, SweepPositive, lower.Sweep)
	assert.InDelta(t, -math.Pi, upper.Span(), eps)
	assert.InDelta(t, math.Pi, lower.Span(), eps)
}

func TestSweep_String(t *testing.T) {
	assert.Equal(t, "positive", SweepPositive.String())
	assert.Equal(t, "negative", SweepNegative.String())
}

// sweepsThrough reports whether angle lies on the arc between its start and
// end, following the arc's sweep.
func sweepsThrough(a Arc, angle float64) bool {
	d := angle - a.StartAngle
	if a.Sweep == SweepNegative {
		d = -d
	}
	d = math.Mod(d+4*math.Pi, 2*math.Pi)
	return d <= math.Abs(a.Span())+1e-9
}
