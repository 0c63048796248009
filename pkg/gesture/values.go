// Package gesture normalizes raw spatial input samples into immutable
// value snapshots with derived quantities (distance, velocity) for
// presentation layers. Each recognizer runs a begin → changed* → end
// lifecycle per gesture; baselines captured at begin are held fixed
// until end, and a new begin always starts fresh.
//
// Malformed samples (NaN, infinite, or missing components) are dropped
// before snapshot construction: a snapshot never carries a non-finite
// value.
package gesture

import "github.com/muhittincamdali/go-gazekit/pkg/spatial"

// DragValue is a snapshot of an in-flight drag. Translation is the
// cumulative offset since the gesture began and Distance its Euclidean
// norm.
type DragValue struct {
	Translation     spatial.Vec3 `json:"translation"`
	Velocity        spatial.Vec3 `json:"velocity"`
	StartLocation   spatial.Vec3 `json:"start_location"`
	CurrentLocation spatial.Vec3 `json:"current_location"`
	Distance        float64      `json:"distance"`
}

// PinchValue is a snapshot of an in-flight pinch. Scale is relative to
// the gesture's starting scale (1.0 = unchanged).
type PinchValue struct {
	Scale        float64 `json:"scale"`
	Velocity     float64 `json:"velocity"`
	StartScale   float64 `json:"start_scale"`
	CurrentScale float64 `json:"current_scale"`
}

// RotationValue is a snapshot of an in-flight rotation. Rotation is
// wrapped to (-π, π] for display; StartRotation and CurrentRotation
// keep the raw accumulated angle so multi-turn rotations stay
// distinguishable.
type RotationValue struct {
	Rotation        float64 `json:"rotation"`
	Velocity        float64 `json:"velocity"`
	StartRotation   float64 `json:"start_rotation"`
	CurrentRotation float64 `json:"current_rotation"`
}

// HoverValue is a snapshot of a hover pose: where the pointer is, how
// far it sits from the reference point, and how fast it is moving.
type HoverValue struct {
	Location spatial.Vec3 `json:"location"`
	Distance float64      `json:"distance"`
	Velocity spatial.Vec3 `json:"velocity"`
}
