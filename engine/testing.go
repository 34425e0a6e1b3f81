package engine

import (
	"github.com/lixenwraith/donut/render"
)

// RecordingSink keeps every flushed frame for tests
type RecordingSink struct {
	Frames     []render.Frame
	Boundaries int

	// FlushErr is returned from Flush once set
	FlushErr error
}

// Flush copies the frame
func (r *RecordingSink) Flush(frame *render.Frame) error {
	if r.FlushErr != nil {
		return r.FlushErr
	}
	r.Frames = append(r.Frames, *frame)
	return nil
}

// Boundary counts frame boundaries
func (r *RecordingSink) Boundary() error {
	r.Boundaries++
	return nil
}
