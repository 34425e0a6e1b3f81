package terminal

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/donut/torus"
)

// MinHeight is the number of terminal lines a streamed frame occupies
const MinHeight = torus.Height + 1

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a width x height terminal shows a whole frame
func Fits(width, height int) bool {
	return width >= torus.Width && height >= MinHeight
}

// origin returns the top-left cell that centers a frame on a width x height screen
func origin(width, height int) (x, y int) {
	x = (width - torus.Width) / 2
	y = (height - torus.Height) / 2
	return max(x, 0), max(y, 0)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the sink cannot be closed normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
