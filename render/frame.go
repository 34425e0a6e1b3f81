package render

import (
	"strings"

	"github.com/lixenwraith/donut/torus"
)

// Frame is an immutable snapshot of a composited glyph buffer, row-major
type Frame struct {
	cells [torus.Size]byte
}

// At returns the glyph at (x, y); out of range returns space
func (f *Frame) At(x, y int) byte {
	if x < 0 || x >= torus.Width || y < 0 || y >= torus.Height {
		return ' '
	}
	return f.cells[y*torus.Width+x]
}

// Index returns the glyph at buffer index i
func (f *Frame) Index(i int) byte {
	return f.cells[i]
}

// Row returns row y as a string of torus.Width glyphs
func (f *Frame) Row(y int) string {
	start := y * torus.Width
	return string(f.cells[start : start+torus.Width])
}

// Bytes returns a copy of the glyph buffer
func (f *Frame) Bytes() []byte {
	out := make([]byte, torus.Size)
	copy(out, f.cells[:])
	return out
}

// String renders the frame as torus.Height rows separated by newlines
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(torus.Size + torus.Height)
	for y := 0; y < torus.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}
