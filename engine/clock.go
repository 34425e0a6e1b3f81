package engine

import (
	"sync"
	"time"
)

// Clock supplies the time used for frame statistics
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock only moves when advanced; MockPacer advances it one frame delay per wait
type FrameClock struct {
	mu       sync.Mutex
	now      time.Time
	advances int
}

// NewFrameClock creates a frame clock stopped at start
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{now: start}
}

func (c *FrameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *FrameClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.advances++
	c.mu.Unlock()
}

// Advances returns how many times the clock was advanced
func (c *FrameClock) Advances() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advances
}
