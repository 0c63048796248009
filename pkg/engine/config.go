package engine

import (
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/dwell"
)

// Config holds the tunable parameters for the interaction engine.
type Config struct {
	// Dwell is the dwell controller configuration; its TickInterval
	// drives the engine's main loop.
	Dwell dwell.Config

	// BroadcastInterval is how often dwell progress and engine state
	// are pushed to subscribers. Activations and gesture snapshots go
	// out immediately.
	BroadcastInterval time.Duration

	// QueueSize bounds the inbound sample queue. Samples past the
	// bound are dropped rather than blocking the source.
	QueueSize int
}

// DefaultConfig returns the recommended engine configuration.
func DefaultConfig() Config {
	return Config{
		Dwell:             dwell.DefaultConfig(),
		BroadcastInterval: 66 * time.Millisecond, // ~15 Hz
		QueueSize:         256,
	}
}
