package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

// statsLogInterval is the number of frames between statistics log lines
const statsLogInterval = 100

// Driver renders frames from its view state into a sink, pacing between frames
// Single-threaded: one goroutine owns the driver and its buffers
type Driver struct {
	view       View
	compositor *render.Compositor
	sink       Sink
	pacer      Pacer
	clock      Clock

	frameNumber uint64
	lastStats   FrameStats
}

// FrameStats describes the most recently rendered frame
type FrameStats struct {
	Frame      uint64
	Composite  render.Stats
	RenderTime time.Duration
}

// NewDriver creates a driver at the initial view
func NewDriver(sink Sink, pacer Pacer) *Driver {
	return &Driver{
		view:       InitialView(),
		compositor: render.NewCompositor(),
		sink:       sink,
		pacer:      pacer,
		clock:      SystemClock{},
	}
}

// SetClock replaces the clock used for render timing
func (d *Driver) SetClock(clock Clock) {
	d.clock = clock
}

// View returns the current view state
func (d *Driver) View() View {
	return d.view
}

// SetView replaces the view state
func (d *Driver) SetView(v View) {
	d.view = v
}

// FrameNumber returns the number of frames flushed
func (d *Driver) FrameNumber() uint64 {
	return d.frameNumber
}

// LastStats returns statistics of the last rendered frame
func (d *Driver) LastStats() FrameStats {
	return d.lastStats
}

// RenderFrame composites one frame from the current view without advancing it
func (d *Driver) RenderFrame() render.Frame {
	start := d.clock.Now()

	d.compositor.Reset()
	for s := range torus.Samples(d.view.A, d.view.B) {
		d.compositor.Composite(s, s.Glyph())
	}

	d.lastStats = FrameStats{
		Frame:      d.frameNumber,
		Composite:  d.compositor.Stats(),
		RenderTime: d.clock.Now().Sub(start),
	}
	return d.compositor.Frame()
}

// Step renders and flushes one frame, then advances the view
func (d *Driver) Step() error {
	frame := d.RenderFrame()
	if err := d.sink.Flush(&frame); err != nil {
		return fmt.Errorf("flush frame %d: %w", d.frameNumber, err)
	}
	d.view.Advance()
	d.frameNumber++

	if d.frameNumber%statsLogInterval == 1 {
		st := d.lastStats
		log.Printf("frame %d: %d writes, %d hidden, %d clipped, render %v",
			st.Frame, st.Composite.Writes, st.Composite.Hidden, st.Composite.Clipped, st.RenderTime)
	}
	return nil
}

// Run renders frames until ctx is done; frames <= 0 runs forever.
// Between frames it waits on the pacer and signals the sink boundary.
// Returns nil after a bounded run, ctx.Err() on cancellation, or the first sink or pacer error.
func (d *Driver) Run(ctx context.Context, frames int) error {
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Step(); err != nil {
			return err
		}
		if frames > 0 && n >= frames {
			log.Printf("render loop finished after %d frames", n)
			return nil
		}
		if err := d.pacer.Wait(ctx); err != nil {
			return err
		}
		if err := d.sink.Boundary(); err != nil {
			return fmt.Errorf("frame boundary %d: %w", d.frameNumber, err)
		}
	}
}
