package engine

import (
	"errors"

	"github.com/lixenwraith/donut/render"
)

// Sink receives completed frames
type Sink interface {
	// Flush emits one complete frame; the frame must not be retained
	Flush(frame *render.Frame) error

	// Boundary repositions output so the next frame overwrites the previous one
	Boundary() error
}

// Tee fans frames out to every sink; all sinks are called and errors are joined
func Tee(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return teeSink(sinks)
}

type teeSink []Sink

func (t teeSink) Flush(frame *render.Frame) error {
	var errs []error
	for _, s := range t {
		if err := s.Flush(frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t teeSink) Boundary() error {
	var errs []error
	for _, s := range t {
		if err := s.Boundary(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every frame
type Discard struct{}

func (Discard) Flush(*render.Frame) error { return nil }
func (Discard) Boundary() error           { return nil }
