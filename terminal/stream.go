package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

// FrameBytes is the encoded size of one streamed frame
const FrameBytes = torus.Size + 1

// AppendFrame appends the streamed encoding of f to dst: each row is
// preceded by a newline and starts at column 1, and a final newline ends the
// frame. Column 0 is never drawn.
func AppendFrame(dst []byte, f *render.Frame) []byte {
	for k := 0; k <= torus.Size; k++ {
		if k%torus.Width == 0 {
			dst = append(dst, '\n')
			continue
		}
		dst = append(dst, f.Index(k))
	}
	return dst
}

// AppendBoundary appends the sequence that moves back over the previous frame
func AppendBoundary(dst []byte) []byte {
	return append(dst, csiFrameUp...)
}

// StreamSink writes frames as a plain byte stream and repositions the cursor
// between frames so each frame overwrites the previous one
type StreamSink struct {
	w       *bufio.Writer
	scratch []byte

	hideCursor bool
	hidden     bool
}

// NewStreamSink creates a stream sink on w; hideCursor hides the terminal
// cursor while frames are drawn and restores it on Close
func NewStreamSink(w io.Writer, hideCursor bool) *StreamSink {
	return &StreamSink{
		w:          bufio.NewWriterSize(w, 4*FrameBytes),
		scratch:    make([]byte, 0, FrameBytes),
		hideCursor: hideCursor,
	}
}

// Flush writes one frame
func (s *StreamSink) Flush(frame *render.Frame) error {
	if s.hideCursor && !s.hidden {
		s.w.Write(csiCursorHide)
		s.hidden = true
	}
	s.scratch = AppendFrame(s.scratch[:0], frame)
	if _, err := s.w.Write(s.scratch); err != nil {
		return err
	}
	return s.w.Flush()
}

// Boundary moves the cursor back to the first line of the last frame
func (s *StreamSink) Boundary() error {
	if _, err := s.w.Write(csiFrameUp); err != nil {
		return err
	}
	return s.w.Flush()
}

// Close restores the cursor if it was hidden
func (s *StreamSink) Close() error {
	if s.hidden {
		s.w.Write(csiCursorShow)
		s.hidden = false
	}
	return s.w.Flush()
}
