// Package window shows frames in a desktop window using the ebiten debug font.
package window

import (
	"sync"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

// Debug font cell size in pixels
const (
	cellWidth  = 6
	cellHeight = 16
)

// Logical screen size holding one frame
const (
	ScreenWidth  = torus.Width * cellWidth
	ScreenHeight = torus.Height * cellHeight
)

// Sink hands frames from the render loop to the window's draw loop
type Sink struct {
	mu      sync.Mutex
	text    string
	version uint64
}

// NewSink creates an empty window sink
func NewSink() *Sink {
	return &Sink{}
}

// Flush publishes the frame; the window draws the latest one
func (s *Sink) Flush(frame *render.Frame) error {
	text := frame.String()
	s.mu.Lock()
	s.text = text
	s.version++
	s.mu.Unlock()
	return nil
}

// Boundary is a no-op; each draw replaces the whole screen
func (s *Sink) Boundary() error {
	return nil
}

// Latest returns the most recent frame text and its version, zero before the first flush
func (s *Sink) Latest() (string, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.version
}
