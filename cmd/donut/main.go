package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/donut/engine"
	"github.com/lixenwraith/donut/network"
	"github.com/lixenwraith/donut/terminal"
	"github.com/lixenwraith/donut/window"
)

var (
	backendFlag = flag.String("backend", "stream", "Output backend: stream, tcell, termbox, window, none")
	framesFlag  = flag.Int("frames", 0, "Number of frames to render (0 = until interrupted)")
	delayFlag   = flag.Duration("delay", engine.DefaultFrameDelay, "Pause between frames")
	listenFlag  = flag.String("listen", "", "Broadcast frames to TCP viewers on host:port")
	viewersFlag = flag.Int("max-viewers", network.DefaultMaxViewers, "Maximum concurrent broadcast viewers")
	scaleFlag   = flag.Int("scale", 2, "Window backend scale factor")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/donut.log")
)

func main() {
	// Panic Recovery: terminal must be usable after a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDONUT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out, err := openBackend(*backendFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "donut: %v\n", err)
		return 1
	}
	defer out.close()

	sink := out.sink
	if *listenFlag != "" {
		b, err := startBroadcast(ctx, *listenFlag, *viewersFlag)
		if err != nil {
			out.close()
			fmt.Fprintf(os.Stderr, "donut: %v\n", err)
			return 1
		}
		defer func() {
			stopCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			if err := b.Stop(stopCtx); err != nil {
				log.Printf("broadcast stop: %v", err)
			}
		}()
		sink = engine.Tee(sink, b)
	}

	if out.watch != nil {
		go func() {
			defer crashHandler()
			out.watch(cancel)
		}()
	}

	driver := engine.NewDriver(sink, engine.NewDelayPacer(*delayFlag))
	log.Printf("backend=%s frames=%d delay=%s", *backendFlag, *framesFlag, *delayFlag)

	if out.window != nil {
		err = runWindowed(ctx, cancel, driver, out.window)
	} else {
		err = driver.Run(ctx, *framesFlag)
	}

	stats := driver.LastStats()
	log.Printf("stopped after %d frames, last frame %d writes in %s: %v",
		driver.FrameNumber(), stats.Composite.Writes, stats.RenderTime, err)

	if err != nil && !errors.Is(err, context.Canceled) {
		out.close()
		fmt.Fprintf(os.Stderr, "donut: %v\n", err)
		return 1
	}
	return 0
}

// runWindowed keeps ebiten on the main goroutine and renders from another
func runWindowed(ctx context.Context, cancel context.CancelFunc, driver *engine.Driver, sink *window.Sink) error {
	errCh := make(chan error, 1)
	go func() {
		defer crashHandler()
		errCh <- driver.Run(ctx, *framesFlag)
	}()

	winErr := window.Run(ctx, cancel, sink, *scaleFlag)
	cancel()
	runErr := <-errCh
	if winErr != nil {
		return fmt.Errorf("window: %w", winErr)
	}
	return runErr
}

func startBroadcast(ctx context.Context, addr string, maxViewers int) (*network.Broadcaster, error) {
	cfg := network.WithAddress(addr)
	cfg.MaxViewers = maxViewers
	b := network.NewBroadcaster(cfg)

	errCh := make(chan error, 1)
	go func() {
		defer crashHandler()
		errCh <- b.Serve()
	}()

	select {
	case <-b.Ready():
		return b, nil
	case err := <-errCh:
		return nil, fmt.Errorf("broadcast on %s: %w", addr, err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// crashHandler restores the terminal when a background goroutine panics
func crashHandler() {
	if r := recover(); r != nil {
		terminal.EmergencyReset(os.Stdout)
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDONUT CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

// backend is an opened output with its optional input watcher and cleanup
type backend struct {
	sink   engine.Sink
	watch  func(cancel context.CancelFunc)
	window *window.Sink
	closed bool
	closer func() error
}

func (b *backend) close() {
	if b.closed || b.closer == nil {
		return
	}
	b.closed = true
	if err := b.closer(); err != nil {
		log.Printf("close backend: %v", err)
	}
}

func openBackend(name string) (*backend, error) {
	switch name {
	case "stream":
		isTerm := terminal.IsTerminal(os.Stdout)
		if isTerm {
			if w, h, err := terminal.WindowSize(os.Stdout); err == nil && !terminal.Fits(w, h) {
				log.Printf("terminal %dx%d is smaller than the frame, output will scroll", w, h)
			}
		}
		s := terminal.NewStreamSink(os.Stdout, isTerm)
		return &backend{sink: s, closer: s.Close}, nil

	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		s, err := terminal.NewTcellSink(screen)
		if err != nil {
			return nil, err
		}
		return &backend{sink: s, watch: s.Watch, closer: s.Close}, nil

	case "termbox":
		s, err := terminal.NewTermboxSink()
		if err != nil {
			return nil, err
		}
		return &backend{sink: s, watch: s.Watch, closer: s.Close}, nil

	case "window":
		if !window.Available {
			return nil, errors.New("window backend requires cgo (build/run with CGO_ENABLED=1)")
		}
		s := window.NewSink()
		return &backend{sink: s, window: s}, nil

	case "none":
		return &backend{sink: engine.Discard{}}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
