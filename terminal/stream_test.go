package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/torus"
)

func testFrame() render.Frame {
	c := render.NewCompositor()
	c.Composite(torus.Sample{X: 1, Y: 1, Depth: 0, Offset: torus.Offset(1, 1)}, '@')
	c.Composite(torus.Sample{X: 79, Y: 21, Depth: 0, Offset: torus.Offset(79, 21)}, '#')
	return c.Frame()
}

func TestAppendFrame_Layout(t *testing.T) {
	f := testFrame()
	out := AppendFrame(nil, &f)

	if len(out) != FrameBytes {
		t.Fatalf("encoded %d bytes, want %d", len(out), FrameBytes)
	}
	if out[0] != '\n' || out[len(out)-1] != '\n' {
		t.Error("frame must start and end with a newline")
	}
	if n := bytes.Count(out, []byte{'\n'}); n != torus.Height+1 {
		t.Errorf("frame has %d newlines, want %d", n, torus.Height+1)
	}

	// Rows between the newlines carry columns 1..79
	lines := strings.Split(string(out[1:len(out)-1]), "\n")
	if len(lines) != torus.Height {
		t.Fatalf("got %d lines, want %d", len(lines), torus.Height)
	}
	for y, line := range lines {
		if len(line) != torus.Width-1 {
			t.Errorf("line %d has %d bytes, want %d", y, len(line), torus.Width-1)
		}
	}
	if lines[1][0] != '@' {
		t.Errorf("(1,1) encoded as %q", lines[1][0])
	}
	if lines[21][78] != '#' {
		t.Errorf("(79,21) encoded as %q", lines[21][78])
	}
}

func TestAppendFrame_Appends(t *testing.T) {
	f := testFrame()
	out := AppendFrame([]byte("prefix"), &f)
	if !bytes.HasPrefix(out, []byte("prefix\n")) {
		t.Errorf("AppendFrame dropped existing bytes: %q", out[:10])
	}
	out = AppendBoundary(out)
	if !bytes.HasSuffix(out, []byte("\x1b[23A")) {
		t.Error("AppendBoundary did not append cursor-up sequence")
	}
}

func TestStreamSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(&buf, false)
	f := testFrame()

	if err := s.Flush(&f); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := s.Boundary(); err != nil {
		t.Fatalf("Boundary: %v", err)
	}
	if err := s.Flush(&f); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	encoded := AppendFrame(nil, &f)
	want := append(append(append([]byte{}, encoded...), "\x1b[23A"...), encoded...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("stream output mismatch:\ngot  %q\nwant %q", buf.Bytes(), want)
	}
}

func TestStreamSink_HidesCursor(t *testing.T) {
	var buf bytes.Buffer
	s := NewStreamSink(&buf, true)
	f := testFrame()

	s.Flush(&f)
	s.Flush(&f)
	s.Close()

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[?25l") {
		t.Error("cursor not hidden before first frame")
	}
	if strings.Count(out, "\x1b[?25l") != 1 {
		t.Error("cursor hide emitted more than once")
	}
	if !strings.HasSuffix(out, "\x1b[?25h") {
		t.Error("cursor not restored on Close")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestStreamSink_WriteError(t *testing.T) {
	s := NewStreamSink(failWriter{}, false)
	f := testFrame()
	if err := s.Flush(&f); err == nil {
		t.Error("Flush on failing writer returned nil")
	}
}

func TestFitsAndOrigin(t *testing.T) {
	tests := []struct {
		w, h   int
		fits   bool
		ox, oy int
	}{
		{80, 23, true, 0, 0},
		{80, 22, false, 0, 0},
		{79, 40, false, 0, 9},
		{120, 40, true, 20, 9},
		{10, 5, false, 0, 0},
	}
	for _, tt := range tests {
		if got := Fits(tt.w, tt.h); got != tt.fits {
			t.Errorf("Fits(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.fits)
		}
		if x, y := origin(tt.w, tt.h); x != tt.ox || y != tt.oy {
			t.Errorf("origin(%d, %d) = (%d, %d), want (%d, %d)", tt.w, tt.h, x, y, tt.ox, tt.oy)
		}
	}
}

func TestEmergencyReset_WritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m", "\x1b[?7h"} {
		if !strings.Contains(out, seq) {
			t.Errorf("EmergencyReset output missing %q", seq)
		}
	}
}
