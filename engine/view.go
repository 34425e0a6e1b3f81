package engine

import "github.com/lixenwraith/donut/vmath"

// View holds the two cross-frame view rotations
type View struct {
	A, B vmath.Rotor
}

// InitialView returns the view of the first frame: both rotors at a quarter turn
func InitialView() View {
	return View{A: vmath.Quarter(), B: vmath.Quarter()}
}

// Advance rotates both view rotors by their per-frame increments
func (v *View) Advance() {
	v.A.Advance(vmath.ViewStepA)
	v.B.Advance(vmath.ViewStepB)
}
