// Package terminal emits rendered frames to text terminals.
//
// Backends:
//   - StreamSink: plain byte stream with a cursor-up sequence between frames,
//     works on any VT100-compatible terminal and in pipes
//   - TcellSink: full-screen output through tcell
//   - TermboxSink: full-screen output through termbox-go
//
// EmergencyReset restores a terminal left in raw mode or the alternate screen.
package terminal
