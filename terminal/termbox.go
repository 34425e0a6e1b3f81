package terminal

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/nsf/termbox-go"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

// TermboxSink draws frames centered on the termbox screen
// termbox is process-global: create at most one
type TermboxSink struct {
	fg, bg termbox.Attribute

	watching atomic.Bool
	done     chan struct{}
}

// NewTermboxSink initializes termbox; the caller must Close it
func NewTermboxSink() (*TermboxSink, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init termbox: %w", err)
	}
	termbox.HideCursor()
	s := &TermboxSink{
		fg:   termbox.ColorDefault,
		bg:   termbox.ColorDefault,
		done: make(chan struct{}),
	}
	if err := termbox.Clear(s.fg, s.bg); err != nil {
		termbox.Close()
		return nil, fmt.Errorf("clear termbox: %w", err)
	}
	return s, nil
}

// Flush draws the frame and flushes termbox's back buffer
func (s *TermboxSink) Flush(frame *render.Frame) error {
	w, h := termbox.Size()
	ox, oy := origin(w, h)

	for y := 0; y < torus.Height; y++ {
		for x := 0; x < torus.Width; x++ {
			termbox.SetCell(ox+x, oy+y, rune(frame.At(x, y)), s.fg, s.bg)
		}
	}
	return termbox.Flush()
}

// Boundary is a no-op: cells are addressed absolutely
func (s *TermboxSink) Boundary() error {
	return nil
}

// Watch polls termbox events until Close, calling cancel on Esc, Ctrl-C or 'q'
// Call at most once
func (s *TermboxSink) Watch(cancel context.CancelFunc) {
	s.watching.Store(true)
	defer close(s.done)

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventResize:
			termbox.Clear(s.fg, s.bg)
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' || ev.Ch == 'Q' {
				cancel()
			}
		}
	}
}

// Close stops Watch and restores the terminal
func (s *TermboxSink) Close() error {
	if s.watching.Load() {
		// Interrupt blocks until a PollEvent receives it
		go termbox.Interrupt()
		<-s.done
	}
	termbox.Close()
	return nil
}
