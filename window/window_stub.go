//go:build !cgo

package window

import (
	"context"
	"errors"
)

const Available = false

func Run(_ context.Context, cancel context.CancelFunc, _ *Sink, _ int) error {
	cancel()
	return errors.New("window backend requires cgo (build/run with CGO_ENABLED=1)")
}
