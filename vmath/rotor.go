package vmath

// Step is a fixed rotation increment: multiplier M over 2^S approximates the
// tangent of the step angle
type Step struct {
	M int64
	S uint
}

// Increments used by the renderer
var (
	TubeStep  = Step{M: 5, S: 8}
	RingStep  = Step{M: 9, S: 7}
	ViewStepA = Step{M: 5, S: 7}
	ViewStepB = Step{M: 5, S: 8}
)

// renormBase is 3 * Scale^2; (renormBase - |v|^2) >> 11 is ~Scale when |v| is ~Scale
const (
	renormBase  = 3 * ScaleSq
	renormShift = 11
)

// Rotor is a unit vector in Q10: X is the cosine-like and Y the sine-like
// component. State is int32; all intermediate products are int64.
type Rotor struct {
	X, Y int32
}

// Identity returns the rotor at angle zero
func Identity() Rotor {
	return Rotor{X: Scale, Y: 0}
}

// Quarter returns the rotor at a quarter turn
func Quarter() Rotor {
	return Rotor{X: 0, Y: Scale}
}

// Rotate advances the rotor by the angle of (m, s) and renormalizes its
// magnitude toward Scale
func (r *Rotor) Rotate(m int64, s uint) {
	x, y := int64(r.X), int64(r.Y)

	t := x
	x -= (m * y) >> s
	y += (m * t) >> s

	// First-order correction: c ~ Scale * (3 - |v|^2) / 2
	c := (renormBase - x*x - y*y) >> renormShift
	x = (x * c) >> Shift
	y = (y * c) >> Shift

	r.X, r.Y = int32(x), int32(y)
}

// Advance rotates by a named increment
func (r *Rotor) Advance(step Step) {
	r.Rotate(step.M, step.S)
}

// MagSq returns X^2 + Y^2
func (r Rotor) MagSq() int64 {
	x, y := int64(r.X), int64(r.Y)
	return x*x + y*y
}

// Cos returns the cosine-like component widened for arithmetic
func (r Rotor) Cos() int64 { return int64(r.X) }

// Sin returns the sine-like component widened for arithmetic
func (r Rotor) Sin() int64 { return int64(r.Y) }
