//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// WindowSize returns the terminal dimensions of f
func WindowSize(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
