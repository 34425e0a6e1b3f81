package torus

// Ramp orders glyphs from dimmest to brightest
const Ramp = ".,-~:;=!*#$@"

// Shade maps a luminance index to its glyph; indices outside the ramp
// (back-facing surface) get the dimmest glyph
func Shade(lum int) byte {
	if lum < 0 || lum >= len(Ramp) {
		return Ramp[0]
	}
	return Ramp[lum]
}
