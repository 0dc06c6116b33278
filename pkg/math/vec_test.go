package math

import (
	"errors"
	"math"
	"testing"
)

func TestVec3Sub(t *testing.T) {
	a := Vec3{4, 6, 8}
	b := Vec3{1, 2, 3}
	got := a.Sub(b)
	want := Vec3{3, 4, 5}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}

	// Anticommutative
	if back := y.Cross(x); back != (Vec3{0, 0, -1}) {
		t.Errorf("y x x = %v, want (0,0,-1)", back)
	}
}

func TestVec3SquaredLength(t *testing.T) {
	v := Vec3{1, 2, 2}
	if got := v.SquaredLength(); got != 9 {
		t.Errorf("Vec3.SquaredLength() = %v, want 9", got)
	}
	if got := (Vec3{}).SquaredLength(); got != 0 {
		t.Errorf("zero SquaredLength() = %v, want 0", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", z)
	}
}

func TestVec3NormalizeWith(t *testing.T) {
	for name, sqrt := range map[string]SqrtFunc{"exact": ExactSqrt, "fast": FastSqrt} {
		t.Run(name, func(t *testing.T) {
			n := Vec3{0, 10, 0}.NormalizeWith(sqrt)
			if math.Abs(float64(n.Y-1)) > 0.002 || n.X != 0 || n.Z != 0 {
				t.Errorf("NormalizeWith() = %v, want ~(0,1,0)", n)
			}
		})
	}
}

func TestVec3NormalizeWithDegenerate(t *testing.T) {
	want := Vec3{ZeroScale, ZeroScale, ZeroScale}

	cases := []Vec3{
		{},
		{0.01, 0.01, 0.01},
		{0.0316, 0, 0}, // squared length just under the threshold
	}
	for _, v := range cases {
		if got := v.NormalizeWith(ExactSqrt); got != want {
			t.Errorf("NormalizeWith(%v) = %v, want fallback %v", v, got, want)
		}
	}

	// The fallback is not unit length.
	if l := want.Length(); l > 0.01 {
		t.Errorf("fallback length = %v, expected far below 1", l)
	}
}

func TestVec3Component(t *testing.T) {
	v := Vec3{1, 2, 3}
	tests := []struct {
		axis Axis
		want float32
	}{
		{AxisRight, 1},
		{AxisUp, 2},
		{AxisFront, 3},
	}
	for _, tt := range tests {
		got, err := v.Component(tt.axis)
		if err != nil {
			t.Fatalf("Component(%d) error: %v", tt.axis, err)
		}
		if got != tt.want {
			t.Errorf("Component(%d) = %v, want %v", tt.axis, got, tt.want)
		}
	}

	if _, err := v.Component(Axis(3)); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Component(3) error = %v, want ErrInvalidAxis", err)
	}
}

func TestVec3Without(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := v.WithoutY(); got != (Vec3{1, 0, 3}) {
		t.Errorf("WithoutY() = %v", got)
	}
	if got := v.WithoutZ(); got != (Vec3{1, 2, 0}) {
		t.Errorf("WithoutZ() = %v", got)
	}
}

func TestAbs32(t *testing.T) {
	for _, x := range []float32{-2.5, 0, 3} {
		if got := Abs32(x); got != float32(math.Abs(float64(x))) {
			t.Errorf("Abs32(%v) = %v", x, got)
		}
	}
}
