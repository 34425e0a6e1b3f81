// Package network broadcasts rendered frames to remote terminals over TCP.
//
// Any client that shows raw bytes on a VT100-compatible terminal can watch:
// telnet, nc, socat. Each viewer receives the same byte stream as the local
// stream sink.
package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/gnet"

	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/terminal"
)

// DefaultMaxViewers bounds concurrent connections
const DefaultMaxViewers = 64

var (
	// Sent on connect: clear screen, home, hide cursor
	greeting = []byte("\x1b[2J\x1b[H\x1b[?25l")
	rejected = []byte("donut: too many viewers, try again later\r\n")
)

// viewer is the write side of a connection; gnet.Conn satisfies it
type viewer interface {
	AsyncWrite(buf []byte) error
}

// Broadcaster is a gnet event handler and an engine sink
type Broadcaster struct {
	gnet.EventServer

	config *Config

	mu      sync.RWMutex
	viewers map[uuid.UUID]viewer

	ready chan struct{}
	once  sync.Once
}

// NewBroadcaster creates a broadcaster; nil cfg uses DefaultConfig
func NewBroadcaster(cfg *Config) *Broadcaster {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxViewers <= 0 {
		cfg.MaxViewers = DefaultMaxViewers
	}
	return &Broadcaster{
		config:  cfg,
		viewers: make(map[uuid.UUID]viewer),
		ready:   make(chan struct{}),
	}
}

func (b *Broadcaster) protoAddr() string {
	return "tcp://" + b.config.Address
}

// Serve runs the gnet event loop; blocks until Stop
func (b *Broadcaster) Serve() error {
	opts := []gnet.Option{
		gnet.WithMulticore(b.config.Multicore),
		gnet.WithReusePort(true),
	}
	if b.config.KeepAlive > 0 {
		opts = append(opts, gnet.WithTCPKeepAlive(b.config.KeepAlive))
	}
	if err := gnet.Serve(b, b.protoAddr(), opts...); err != nil {
		return fmt.Errorf("serve %s: %w", b.config.Address, err)
	}
	return nil
}

// Ready is closed once the listener accepts connections
func (b *Broadcaster) Ready() <-chan struct{} {
	return b.ready
}

// Stop shuts the event loop down
func (b *Broadcaster) Stop(ctx context.Context) error {
	return gnet.Stop(ctx, b.protoAddr())
}

// Viewers returns the number of connected viewers
func (b *Broadcaster) Viewers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.viewers)
}

// Flush sends the frame to every viewer; a failed viewer is dropped, never an error
func (b *Broadcaster) Flush(frame *render.Frame) error {
	// gnet keeps the buffer until the loop writes it; never reuse
	payload := terminal.AppendFrame(make([]byte, 0, terminal.FrameBytes), frame)
	b.broadcast(payload)
	return nil
}

// Boundary sends the cursor-up sequence to every viewer
func (b *Broadcaster) Boundary() error {
	b.broadcast(terminal.AppendBoundary(nil))
	return nil
}

func (b *Broadcaster) broadcast(payload []byte) {
	var failed []uuid.UUID

	b.mu.RLock()
	for id, v := range b.viewers {
		if err := v.AsyncWrite(payload); err != nil {
			log.Printf("viewer %s: write failed: %v", id, err)
			failed = append(failed, id)
		}
	}
	b.mu.RUnlock()

	for _, id := range failed {
		b.leave(id)
	}
}

// admit registers a viewer, returning the bytes to send first and false if full
func (b *Broadcaster) admit(id uuid.UUID, v viewer) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.viewers) >= b.config.MaxViewers {
		return rejected, false
	}
	b.viewers[id] = v
	return greeting, true
}

func (b *Broadcaster) leave(id uuid.UUID) {
	b.mu.Lock()
	delete(b.viewers, id)
	b.mu.Unlock()
}

// ===== gnet.EventHandler =====

func (b *Broadcaster) OnInitComplete(srv gnet.Server) (action gnet.Action) {
	log.Printf("broadcasting frames on %s (multicore=%v, loops=%d)", srv.Addr, srv.Multicore, srv.NumEventLoop)
	b.once.Do(func() { close(b.ready) })
	return
}

func (b *Broadcaster) OnShutdown(srv gnet.Server) {
	log.Printf("broadcast on %s stopped", srv.Addr)
}

func (b *Broadcaster) OnOpened(c gnet.Conn) (out []byte, action gnet.Action) {
	id := uuid.New()
	out, ok := b.admit(id, c)
	if !ok {
		log.Printf("[%s] rejected, %d viewers", c.RemoteAddr(), b.Viewers())
		return out, gnet.Close
	}
	c.SetContext(id)
	log.Printf("[%s] viewer %s joined", c.RemoteAddr(), id)
	return
}

func (b *Broadcaster) OnClosed(c gnet.Conn, err error) (action gnet.Action) {
	id, ok := c.Context().(uuid.UUID)
	if !ok {
		return
	}
	b.leave(id)
	log.Printf("[%s] viewer %s left: %v", c.RemoteAddr(), id, err)
	return
}

// React discards viewer input
func (b *Broadcaster) React(packet []byte, c gnet.Conn) (out []byte, action gnet.Action) {
	c.ResetBuffer()
	return
}
