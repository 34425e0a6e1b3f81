package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

// TcellSink draws frames centered on a tcell screen
type TcellSink struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTcellSink initializes screen and wraps it; the caller must Close it
func NewTcellSink(screen tcell.Screen) (*TcellSink, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &TcellSink{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Flush draws the frame and shows it
func (s *TcellSink) Flush(frame *render.Frame) error {
	w, h := s.screen.Size()
	ox, oy := origin(w, h)

	for y := 0; y < torus.Height; y++ {
		for x := 0; x < torus.Width; x++ {
			s.screen.SetContent(ox+x, oy+y, rune(frame.At(x, y)), nil, s.style)
		}
	}
	s.screen.Show()
	return nil
}

// Boundary is a no-op: cells are addressed absolutely
func (s *TcellSink) Boundary() error {
	return nil
}

// Watch polls screen events until the screen is finalized, calling cancel on
// Esc, Ctrl-C or 'q' and resynchronizing on resize
func (s *TcellSink) Watch(cancel context.CancelFunc) {
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Clear()
			s.screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				cancel()
			}
		}
	}
}

// Close restores the terminal
func (s *TcellSink) Close() error {
	s.screen.Fini()
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
