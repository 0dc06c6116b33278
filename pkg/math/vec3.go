// Package math provides the vector and rotation types used by the collision code.
package math

import (
	"errors"
	"math"
)

// ZeroScale is the squared length at or below which a vector is treated as
// degenerate by NormalizeWith.
const ZeroScale float32 = 0.001

// ErrInvalidAxis is returned when an axis value is outside Right/Up/Front.
var ErrInvalidAxis = errors.New("invalid axis")

// Axis selects one component of a Vec3.
type Axis uint8

const (
	AxisRight Axis = iota // X
	AxisUp                // Y
	AxisFront             // Z
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// SquaredLength returns x²+y²+z².
func (v Vec3) SquaredLength() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return ExactSqrt(v.SquaredLength())
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// NormalizeWith scales v to unit length using the given square root.
// Vectors whose squared length is at or below ZeroScale come back as the
// fixed (ZeroScale, ZeroScale, ZeroScale), which is not unit length.
func (v Vec3) NormalizeWith(sqrt SqrtFunc) Vec3 {
	sq := v.SquaredLength()
	if sq <= ZeroScale {
		return Vec3{ZeroScale, ZeroScale, ZeroScale}
	}
	inv := 1 / sqrt(sq)
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Component returns X, Y or Z for AxisRight, AxisUp or AxisFront.
func (v Vec3) Component(axis Axis) (float32, error) {
	switch axis {
	case AxisRight:
		return v.X, nil
	case AxisUp:
		return v.Y, nil
	case AxisFront:
		return v.Z, nil
	}
	return 0, ErrInvalidAxis
}

// WithoutY returns v with the Y component zeroed (projection onto XZ).
func (v Vec3) WithoutY() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// WithoutZ returns v with the Z component zeroed (projection onto XY).
func (v Vec3) WithoutZ() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// Abs32 returns |x|.
func Abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
