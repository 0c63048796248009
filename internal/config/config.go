// Package config provides environment-based configuration helpers for
// gazekit commands.
package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the engine daemon.
const (
	DefaultPort          = "8090"
	DefaultLogLevel      = "info"
	DefaultDwellProfile  = "default"
	DefaultBroadcastRate = 66 * time.Millisecond // ~15 Hz
)

// Port returns the HTTP port from GAZEKIT_PORT or the default.
func Port() string {
	if p := os.Getenv("GAZEKIT_PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// LogLevel returns the log level from GAZEKIT_LOG_LEVEL or the default.
func LogLevel() string {
	if l := os.Getenv("GAZEKIT_LOG_LEVEL"); l != "" {
		return l
	}
	return DefaultLogLevel
}

// DwellProfile returns the dwell tuning profile name from
// GAZEKIT_DWELL_PROFILE: "default", "slow", or "responsive".
func DwellProfile() string {
	if p := os.Getenv("GAZEKIT_DWELL_PROFILE"); p != "" {
		return p
	}
	return DefaultDwellProfile
}

// DwellDuration returns an override for the default dwell duration
// from GAZEKIT_DWELL_MS, or 0 if unset or unparseable.
func DwellDuration() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("GAZEKIT_DWELL_MS"))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// BroadcastInterval returns the event broadcast cadence from
// GAZEKIT_BROADCAST_MS or the default.
func BroadcastInterval() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("GAZEKIT_BROADCAST_MS"))
	if err != nil || ms <= 0 {
		return DefaultBroadcastRate
	}
	return time.Duration(ms) * time.Millisecond
}
