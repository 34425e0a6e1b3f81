//go:build !unix

package terminal

import (
	"os"

	"golang.org/x/term"
)

// WindowSize returns the terminal dimensions of f
func WindowSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
