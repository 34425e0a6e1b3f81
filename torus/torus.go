// Package torus samples the torus surface and turns each sample into a
// projected, shaded screen pixel.
//
// All geometry is Q10 fixed point (see vmath). The arithmetic is fixed by the
// frame layout below and reproduces the reference frames bit for bit.
package torus

import (
	"fmt"
	"math"

	"github.com/lixenwraith/donut/vmath"
)

// Screen layout
const (
	Width  = 80
	Height = 22
	Size   = Width * Height
)

// Sample grid
const (
	TubeSteps = 324
	RingSteps = 90
)

// Geometry in Q10
const (
	MinorRadius    = 1 // multiplies Q10 values directly
	MajorRadius    = 2 * vmath.Scale
	CameraDistance = 5120 * vmath.Scale
)

const (
	centerX    = 40
	centerY    = 12
	scaleX     = 30
	scaleY     = 15
	depthShift = 15
	lumShift   = 7
)

// Sample is one projected surface point
type Sample struct {
	X, Y   int
	Depth  int8
	Lum    int
	Offset int
}

// Visible reports whether the pixel lies inside the drawable window.
// Row 0 and column 0 are never drawn.
func (s Sample) Visible() bool {
	return s.X > 0 && s.X < Width && s.Y > 0 && s.Y < Height
}

// Glyph returns the ramp glyph for the sample's luminance
func (s Sample) Glyph() byte {
	return Shade(s.Lum)
}

// Offset maps screen coordinates to a buffer index: the row product wraps as an
// unsigned machine word before the modulo. Only meaningful for visible pixels.
func Offset(x, y int) int {
	return int(uint64(int64(x)) + uint64(int64(y)*Width)%Size)
}

// Project computes the sample for one tube/ring position under view rotors a and b.
// Panics if the depth does not fit int8; the geometry constants bound it to about ±101.
func Project(a, b, tube, ring vmath.Rotor) Sample {
	cosA, sinA := a.Cos(), a.Sin()
	cosB, sinB := b.Cos(), b.Sin()
	cosI, sinI := tube.Cos(), tube.Sin()
	cosJ, sinJ := ring.Cos(), ring.Sin()

	circle := MinorRadius*cosJ + MajorRadius
	cx := vmath.Mul(cosI, circle)
	tiltJ := vmath.Mul(cosA, sinJ)
	cy := vmath.Mul(sinI, circle)
	tilt := MinorRadius*tiltJ - vmath.Mul(sinA, cy)
	lift := vmath.Mul(sinA, sinJ)
	denom := CameraDistance + MinorRadius*vmath.Scale*lift + cosA*cy
	normal := vmath.Mul(cosJ, sinI)

	// Vertical projection uses sinA against cx, as the reference frames do
	x := centerX + scaleX*(cosB*cx-sinB*tilt)/denom
	y := centerY + scaleY*(cosB*tilt+sinA*cx)/denom

	lum := (((-cosA*normal - cosB*(vmath.Mul(-sinA, normal)+tiltJ) - cosI*vmath.Mul(cosJ, sinB)) >> vmath.Shift) - lift) >> lumShift

	zz := (denom - CameraDistance) >> depthShift
	if zz < math.MinInt8 || zz > math.MaxInt8 {
		panic(fmt.Sprintf("torus: depth %d out of int8 range (tube %+v, ring %+v, view %+v %+v)", zz, tube, ring, a, b))
	}

	return Sample{
		X:      int(x),
		Y:      int(y),
		Depth:  int8(zz),
		Lum:    int(lum),
		Offset: Offset(int(x), int(y)),
	}
}
