package torus

import (
	"iter"

	"github.com/lixenwraith/donut/vmath"
)

// Samples yields every grid sample for view rotors a and b, ring-major.
// Both grid rotors restart at angle zero on each call; a and b are not modified.
func Samples(a, b vmath.Rotor) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		ring := vmath.Identity()
		for j := 0; j < RingSteps; j++ {
			tube := vmath.Identity()
			for i := 0; i < TubeSteps; i++ {
				if !yield(Project(a, b, tube, ring)) {
					return
				}
				tube.Advance(vmath.TubeStep)
			}
			ring.Advance(vmath.RingStep)
		}
	}
}
