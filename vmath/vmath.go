// Package vmath provides the Q10 fixed-point arithmetic used by the torus renderer.
//
// One real unit is Scale (1024). Products of two Q10 values are brought back to
// scale with an arithmetic right shift by Shift. Right shifts on negative values
// round toward negative infinity and quotients truncate toward zero; both are
// relied on for bit-exact frames.
package vmath

// Q10 fixed point constants
const (
	Shift = 10
	Scale = 1 << Shift

	// ScaleSq is one unit squared, the magnitude target of a Rotor
	ScaleSq = Scale * Scale
)

// FromInt converts an integer to Q10
func FromInt(i int) int64 { return int64(i) << Shift }

// Mul multiplies two Q10 values, shifting the product back to scale
func Mul(a, b int64) int64 {
	return (a * b) >> Shift
}
