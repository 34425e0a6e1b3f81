package engine

import (
	"context"
	"time"
)

// DefaultFrameDelay is the pause between a frame flush and the next frame
const DefaultFrameDelay = 35 * time.Millisecond

// Pacer suspends the render loop between frames
type Pacer interface {
	// Wait blocks for the inter-frame delay or until ctx is done
	Wait(ctx context.Context) error
}

// DelayPacer sleeps a fixed delay per Wait
type DelayPacer struct {
	delay time.Duration
	timer *time.Timer
}

// NewDelayPacer creates a pacer sleeping delay per frame; non-positive delay only checks ctx
func NewDelayPacer(delay time.Duration) *DelayPacer {
	return &DelayPacer{delay: delay}
}

// Wait sleeps the configured delay, returning ctx.Err() if cancelled first
func (p *DelayPacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	if p.timer == nil {
		p.timer = time.NewTimer(p.delay)
	} else {
		p.timer.Reset(p.delay)
	}

	select {
	case <-p.timer.C:
		return nil
	case <-ctx.Done():
		p.timer.Stop()
		return ctx.Err()
	}
}

// MockPacer counts waits and advances a mock clock instead of sleeping
type MockPacer struct {
	Delay time.Duration
	Clock *FrameClock
	Waits int

	// OnWait runs after each wait is counted; a non-nil return is returned from Wait
	OnWait func(n int) error
}

// Wait records the wait and advances the mock clock
func (p *MockPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Waits++
	if p.Clock != nil {
		p.Clock.Advance(p.Delay)
	}
	if p.OnWait != nil {
		return p.OnWait(p.Waits)
	}
	return nil
}
