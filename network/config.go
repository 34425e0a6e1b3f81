package network

import "time"

// Config holds broadcast listener configuration
type Config struct {
	// Address to bind, host:port
	Address string

	// Connection limits
	MaxViewers int

	// Event loop per CPU
	Multicore bool

	// Zero disables keepalive
	KeepAlive time.Duration
}

// DefaultConfig returns defaults for a local broadcast
func DefaultConfig() *Config {
	return &Config{
		Address:    ":7777",
		MaxViewers: DefaultMaxViewers,
		Multicore:  true,
		KeepAlive:  time.Minute,
	}
}

// WithAddress returns a copy of the defaults bound to addr
func WithAddress(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
