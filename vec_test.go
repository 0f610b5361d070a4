package sketch

import (
	"math"
	"testing"
)

func TestVectorBetween(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		expect Vector
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Vec(0, 0)},
		{"positive", Pt(1, 2), Pt(4, 6), Vec(3, 4)},
		{"negative", Pt(4, 6), Pt(1, 2), Vec(-3, -4)},
		{"mixed", Pt(-1, 2), Pt(3, -4), Vec(4, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VectorBetween(tt.a, tt.b)
			if !got.Approx(tt.expect, 1e-10) {
				t.Errorf("VectorBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestVectorBetween_OrderSensitive(t *testing.T) {
	a, b := Pt(1, 1), Pt(3, 2)
	ab := VectorBetween(a, b)
	ba := VectorBetween(b, a)
	if ab == ba {
		t.Errorf("VectorBetween should depend on order, got %v both ways", ab)
	}
	if ab != ba.Neg() {
		t.Errorf("VectorBetween(a, b) = %v, want -VectorBetween(b, a) = %v", ab, ba.Neg())
	}
}

func TestAngleOf(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		expect float64
	}{
		{"zero vector", Vec(0, 0), 0},
		{"right", Vec(1, 0), 0},
		{"up", Vec(0, 1), math.Pi / 2},
		{"left", Vec(-1, 0), math.Pi},
		{"down", Vec(0, -1), 3 * math.Pi / 2},
		{"diagonal", Vec(1, 1), math.Pi / 4},
		{"fourth quadrant", Vec(1, -1), 7 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleOf(tt.v)
			if math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("AngleOf(%v) = %v, want %v", tt.v, got, tt.expect)
			}
			if got != tt.v.Angle() {
				t.Errorf("Vector.Angle() = %v, want %v", tt.v.Angle(), got)
			}
		})
	}
}

func TestAngleOf_Range(t *testing.T) {
	for i := 0; i < 360; i++ {
		a := float64(i) * math.Pi / 180
		v := Vec(math.Cos(a)*3, math.Sin(a)*3)
		got := AngleOf(v)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("AngleOf(%v) = %v, outside [0, 2π)", v, got)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		expect Vector
	}{
		{"right", Vec(1, 0), Vec(0, 1)},
		{"up", Vec(0, 1), Vec(-1, 0)},
		{"diagonal", Vec(2, 3), Vec(-3, 2)},
		{"zero", Vec(0, 0), Vec(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perpendicular(tt.v)
			if !got.Approx(tt.expect, 1e-10) {
				t.Errorf("Perpendicular(%v) = %v, want %v", tt.v, got, tt.expect)
			}
			if tt.v.Dot(got) != 0 {
				t.Errorf("%v · %v = %v, want 0", tt.v, got, tt.v.Dot(got))
			}
			if got != tt.v.Perp() {
				t.Errorf("Vector.Perp() = %v, want %v", tt.v.Perp(), got)
			}
		})
	}
}

func TestVector_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector
		expect float64
	}{
		{"counter-clockwise", Vec(1, 0), Vec(0, 1), 1},
		{"clockwise", Vec(0, 1), Vec(1, 0), -1},
		{"parallel", Vec(2, 2), Vec(1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); got != tt.expect {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVector_Length(t *testing.T) {
	if got := Vec(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if !Vec(0, 0).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if Vec(0, 1e-300).IsZero() {
		t.Error("tiny vector should not report IsZero")
	}
	if got := Vec(1, -2).Mul(3); got != Vec(3, -6) {
		t.Errorf("Mul(3) = %v, want (3, -6)", got)
	}
}

func TestAngleOf_TinyNegative(t *testing.T) {
	got := AngleOf(Vec(1, -1e-18))
	if got < 0 || got >= 2*math.Pi {
		t.Errorf("AngleOf(1, -1e-18) = %v, outside [0, 2π)", got)
	}
}
