package terminal

// Pre-allocated ANSI sequence fragments
var (
	csiSGR0 = []byte("\x1b[0m")
	csiRIS  = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Moves the cursor from below a streamed frame back to its first line
	csiFrameUp = []byte("\x1b[23A")

	// Screen modes
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)
