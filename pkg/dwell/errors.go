package dwell

import "errors"

var (
	// ErrInvalidConfiguration is returned when a target is registered
	// with a non-positive dwell duration.
	ErrInvalidConfiguration = errors.New("dwell duration must be positive")

	// ErrUnknownTarget is returned for operations on a handle that was
	// never registered or has already been unregistered.
	ErrUnknownTarget = errors.New("unknown dwell target")
)
