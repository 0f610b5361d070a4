package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestBisector(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		expect Line
	}{
		{"horizontal segment gives vertical line", Pt(0, 0), Pt(2, 0), VerticalLine{X: 1}},
		{"vertical segment gives horizontal line", Pt(0, 0), Pt(0, 2), SlopedLine{Slope: 0, Intercept: 1}},
		{"diagonal", Pt(0, 0), Pt(2, 2), SlopedLine{Slope: -1, Intercept: 2}},
		{"coincident points", Pt(3, 4), Pt(3, 4), VerticalLine{X: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bisector(tt.a, tt.b)
			switch want := tt.expect.(type) {
			case VerticalLine:
				v, ok := got.(VerticalLine)
				require.True(t, ok, "Bisector(%v, %v) = %#v, want VerticalLine", tt.a, tt.b, got)
				assert.InDelta(t, want.X, v.X, eps)
			case SlopedLine:
				s, ok := got.(SlopedLine)
				require.True(t, ok, "Bisector(%v, %v) = %#v, want SlopedLine", tt.a, tt.b, got)
				assert.InDelta(t, want.Slope, s.Slope, eps)
				assert.InDelta(t, want.Intercept, s.Intercept, eps)
			}
		})
	}
}

func TestBisector_Equidistant(t *testing.T) {
	a, b := Pt(1, 3), Pt(5, -2)
	l, ok := Bisector(a, b).(SlopedLine)
	require.True(t, ok)
	for _, x := range []float64{-10, 0, 2.5, 7} {
		p := Pt(x, l.At(x))
		assert.InDelta(t, Distance(p, a), Distance(p, b), 1e-9, "point %v on bisector", p)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 Line
		expect Point
	}{
		{"crossing slopes", SlopedLine{Slope: 1, Intercept: 0}, SlopedLine{Slope: -1, Intercept: 4}, Pt(2, 2)},
		{"vertical first", VerticalLine{X: 3}, SlopedLine{Slope: 2, Intercept: 1}, Pt(3, 7)},
		{"vertical second", SlopedLine{Slope: 2, Intercept: 1}, VerticalLine{X: -1}, Pt(-1, -1)},
		{"horizontal and vertical", SlopedLine{Slope: 0, Intercept: 5}, VerticalLine{X: 2}, Pt(2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intersect(tt.l1, tt.l2)
			require.NoError(t, err)
			assert.InDelta(t, tt.expect.X, got.X, eps)
			assert.InDelta(t, tt.expect.Y, got.Y, eps)
		})
	}
}

func TestIntersect_Parallel(t *testing.T) {
	tests := []struct {
		name   string
		l1, l2 Line
	}{
		{"distinct parallel", SlopedLine{Slope: 1, Intercept: 0}, SlopedLine{Slope: 1, Intercept: 5}},
		{"coincident", SlopedLine{Slope: 2, Intercept: 3}, SlopedLine{Slope: 2, Intercept: 3}},
		{"two verticals", VerticalLine{X: 1}, VerticalLine{X: 4}},
		{"same vertical", VerticalLine{X: 1}, VerticalLine{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Intersect(tt.l1, tt.l2)
			require.ErrorIs(t, err, ErrIntersectionUndefined)
		})
	}
}

func TestIntersect_NilLine(t *testing.T) {
	_, err := Intersect(nil, VerticalLine{X: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIntersectionUndefined)
}

func TestCircumcenter(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
		center  Point
	}{
		{"right triangle", Pt(0, 0), Pt(2, 0), Pt(0, 2), Pt(1, 1)},
		{"vertical first side", Pt(0, 0), Pt(0, 4), Pt(4, 4), Pt(2, 2)},
		{"unit circle", Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, 0)},
		{"offset circle", Pt(8, 3), Pt(5, 6), Pt(2, 3), Pt(5, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Circumcenter(tt.a, tt.b, tt.c)
			require.NoError(t, err)
			assert.InDelta(t, tt.center.X, got.X, eps)
			assert.InDelta(t, tt.center.Y, got.Y, eps)
		})
	}
}

func TestCircumcenter_Equidistant(t *testing.T) {
	triples := [][3]Point{
		{Pt(0, 0), Pt(2, 0), Pt(0, 2)},
		{Pt(-3, 1), Pt(4, 7), Pt(10, -2)},
		{Pt(0.1, 0.2), Pt(0.3, 0.9), Pt(1.7, 0.4)},
		{Pt(100, 100), Pt(100, 250), Pt(40, 180)},
	}

	for _, tr := range triples {
		a, b, c := tr[0], tr[1], tr[2]
		center, err := Circumcenter(a, b, c)
		require.NoError(t, err)

		ra := Distance(a, center)
		assert.InDelta(t, ra, Distance(b, center), 1e-6*math.Max(1, ra))
		assert.InDelta(t, ra, Distance(c, center), 1e-6*math.Max(1, ra))
	}
}

func TestCircumcenter_Collinear(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Point
	}{
		{"horizontal", Pt(0, 0), Pt(1, 0), Pt(5, 0)},
		{"vertical", Pt(2, 0), Pt(2, 3), Pt(2, 9)},
		{"diagonal", Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		{"out of order", Pt(0, 0), Pt(4, 2), Pt(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Circumcenter(tt.a, tt.b, tt.c)
			require.ErrorIs(t, err, ErrIntersectionUndefined)
		})
	}
}
