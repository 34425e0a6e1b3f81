//go:build cgo

package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Available reports whether this build can open a window
const Available = true

// Run opens the window and blocks until it closes, ctx is cancelled, or the
// user presses Escape or Q. Must be called from the main goroutine.
func Run(ctx context.Context, cancel context.CancelFunc, sink *Sink, scale int) error {
	if scale < 1 {
		scale = 1
	}
	g := &game{ctx: ctx, cancel: cancel, sink: sink}

	ebiten.SetWindowTitle("donut")
	ebiten.SetWindowSize(ScreenWidth*scale, ScreenHeight*scale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	cancel()
	return err
}

type game struct {
	ctx    context.Context
	cancel context.CancelFunc
	sink   *Sink
	text   string
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.cancel()
		return ebiten.Termination
	}
	g.text, _ = g.sink.Latest()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.text)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
