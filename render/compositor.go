package render

import (
	"math"

	"github.com/lixenwraith/donut/torus"
)

// Compositor owns the frame and depth buffers of one frame
// Composite is the only mutation besides Reset
type Compositor struct {
	glyphs [torus.Size]byte
	depth  [torus.Size]int8

	// Per-frame counters
	writes  int
	hidden  int
	clipped int
}

// NewCompositor creates a compositor with cleared buffers
func NewCompositor() *Compositor {
	c := &Compositor{}
	c.Reset()
	return c
}

// Reset fills glyphs with spaces and depths with the farthest value using exponential copy
func (c *Compositor) Reset() {
	c.glyphs[0] = ' '
	c.depth[0] = math.MaxInt8
	for filled := 1; filled < torus.Size; filled *= 2 {
		copy(c.glyphs[filled:], c.glyphs[:filled])
		copy(c.depth[filled:], c.depth[:filled])
	}
	c.writes, c.hidden, c.clipped = 0, 0, 0
}

// Composite writes glyph at the sample's offset if the sample is inside the
// window and strictly nearer than the stored depth; equal depth keeps the
// earlier glyph. Returns true if written.
func (c *Compositor) Composite(s torus.Sample, glyph byte) bool {
	if !s.Visible() || s.Offset < 0 || s.Offset >= torus.Size {
		c.clipped++
		return false
	}
	if s.Depth >= c.depth[s.Offset] {
		c.hidden++
		return false
	}
	c.depth[s.Offset] = s.Depth
	c.glyphs[s.Offset] = glyph
	c.writes++
	return true
}

// Glyph returns the glyph stored at buffer index i
func (c *Compositor) Glyph(i int) byte {
	return c.glyphs[i]
}

// Depth returns the depth stored at buffer index i
func (c *Compositor) Depth(i int) int8 {
	return c.depth[i]
}

// Frame snapshots the glyph buffer
func (c *Compositor) Frame() Frame {
	return Frame{cells: c.glyphs}
}

// Stats returns the counters accumulated since the last Reset
func (c *Compositor) Stats() Stats {
	return Stats{Writes: c.writes, Hidden: c.hidden, Clipped: c.clipped}
}

// Stats counts composite outcomes for one frame
type Stats struct {
	Writes  int // accepted
	Hidden  int // lost the depth test
	Clipped int // outside the window
}

// Total returns the number of composite calls
func (s Stats) Total() int {
	return s.Writes + s.Hidden + s.Clipped
}
