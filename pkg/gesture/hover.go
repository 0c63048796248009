package gesture

import (
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// HoverRecognizer turns a stream of absolute positions into HoverValue
// snapshots measured against a fixed reference point (typically the
// hovered element's center).
type HoverRecognizer struct {
	active bool

	reference spatial.Vec3

	lastLocation spatial.Vec3
	lastTime     time.Time
	lastVelocity spatial.Vec3

	value HoverValue

	onChanged func(HoverValue)
	onEnded   func(HoverValue)
}

// NewHoverRecognizer creates an idle hover recognizer measuring
// distance from the given reference point.
func NewHoverRecognizer(reference spatial.Vec3) *HoverRecognizer {
	return &HoverRecognizer{reference: reference}
}

// OnChanged sets the callback invoked with each mid-gesture snapshot.
func (r *HoverRecognizer) OnChanged(callback func(HoverValue)) {
	r.onChanged = callback
}

// OnEnded sets the callback invoked with the final snapshot.
func (r *HoverRecognizer) OnEnded(callback func(HoverValue)) {
	r.onEnded = callback
}

// Active reports whether a hover is in flight.
func (r *HoverRecognizer) Active() bool {
	return r.active
}

// Value returns the most recent snapshot of the current hover.
func (r *HoverRecognizer) Value() HoverValue {
	return r.value
}

// Begin starts a hover at the sample's position. An invalid sample
// leaves the recognizer idle.
func (r *HoverRecognizer) Begin(s Sample) {
	if !s.validPosition() {
		return
	}
	r.active = true
	r.lastLocation = s.Position
	r.lastTime = s.Timestamp
	r.lastVelocity = spatial.Vec3{}
	r.value = HoverValue{
		Location: s.Position,
		Distance: s.Position.DistanceTo(r.reference),
	}
}

// Update folds a new sample into the hover and emits a snapshot.
// Invalid samples are dropped silently.
func (r *HoverRecognizer) Update(s Sample) {
	if !r.active || !s.validPosition() {
		return
	}
	r.apply(s)
	if r.onChanged != nil {
		r.onChanged(r.value)
	}
}

// End finishes the hover, folding in the final sample if valid, and
// emits the final snapshot. The recognizer returns to idle.
func (r *HoverRecognizer) End(s Sample) {
	if !r.active {
		return
	}
	if s.validPosition() {
		r.apply(s)
	}
	final := r.value
	r.active = false
	if r.onEnded != nil {
		r.onEnded(final)
	}
}

func (r *HoverRecognizer) apply(s Sample) {
	velocity := r.lastVelocity
	if dt := s.Timestamp.Sub(r.lastTime); dt >= minSampleInterval {
		velocity = s.Position.Sub(r.lastLocation).Scale(1 / dt.Seconds())
	}

	r.value = HoverValue{
		Location: s.Position,
		Distance: s.Position.DistanceTo(r.reference),
		Velocity: velocity,
	}
	r.lastLocation = s.Position
	r.lastTime = s.Timestamp
	r.lastVelocity = velocity
}
