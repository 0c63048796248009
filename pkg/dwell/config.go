package dwell

import "time"

// Config holds the tunable parameters for dwell activation.
type Config struct {
	// TickInterval is the cadence at which the interaction loop is
	// expected to call Tick. Progress advances by elapsed wall time,
	// so a late tick does not slow a dwell down.
	TickInterval time.Duration

	// DefaultDuration is used when a target is registered without an
	// explicit dwell duration (e.g. via the HTTP API).
	DefaultDuration time.Duration
}

// DefaultConfig returns the recommended configuration: a 60 Hz tick
// with a one-second dwell.
func DefaultConfig() Config {
	return Config{
		TickInterval:    16667 * time.Microsecond, // ~60 Hz
		DefaultDuration: time.Second,
	}
}

// SlowConfig returns a configuration for deliberate, low-error-rate
// activation (longer dwell, relaxed tick).
func SlowConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = 33 * time.Millisecond // ~30 Hz
	cfg.DefaultDuration = 2 * time.Second
	return cfg
}

// ResponsiveConfig returns a configuration for expert users who accept
// more accidental activations in exchange for speed.
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.TickInterval = 11111 * time.Microsecond // ~90 Hz
	cfg.DefaultDuration = 600 * time.Millisecond
	return cfg
}
