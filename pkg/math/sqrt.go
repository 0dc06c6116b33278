package math

import "math"

// SqrtFunc computes a square root. Collision code takes one so callers can
// pick between ExactSqrt and the legacy FastSqrt.
type SqrtFunc func(float32) float32

// fastInvSqrtMagic is the initial-guess constant for the bit-level
// reciprocal square root.
const fastInvSqrtMagic = 0x5f3759df

// ExactSqrt returns the square root computed in float64, or 0 for x <= 0.
func ExactSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

// FastInvSqrt approximates 1/sqrt(x) with the 0x5f3759df bit trick and a
// single Newton-Raphson step. Relative error stays under about 0.2%.
func FastInvSqrt(x float32) float32 {
	half := x * 0.5
	i := math.Float32bits(x)
	i = fastInvSqrtMagic - (i >> 1)
	y := math.Float32frombits(i)
	return y * (1.5 - half*y*y)
}

// FastSqrt approximates sqrt(x) as x * FastInvSqrt(x). Returns 0 for x <= 0.
//
// Results are deterministic across platforms, which replayed simulations
// depend on; use ExactSqrt when that does not matter.
func FastSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return x * FastInvSqrt(x)
}
