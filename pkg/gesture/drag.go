package gesture

import (
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// DragRecognizer turns a stream of absolute positions into DragValue
// snapshots. Translation is measured against the position captured at
// Begin.
type DragRecognizer struct {
	active bool

	startLocation spatial.Vec3
	lastLocation  spatial.Vec3
	lastTime      time.Time
	lastVelocity  spatial.Vec3

	value DragValue

	onChanged func(DragValue)
	onEnded   func(DragValue)
}

// NewDragRecognizer creates an idle drag recognizer.
func NewDragRecognizer() *DragRecognizer {
	return &DragRecognizer{}
}

// OnChanged sets the callback invoked with each mid-gesture snapshot.
func (r *DragRecognizer) OnChanged(callback func(DragValue)) {
	r.onChanged = callback
}

// OnEnded sets the callback invoked with the final snapshot.
func (r *DragRecognizer) OnEnded(callback func(DragValue)) {
	r.onEnded = callback
}

// Active reports whether a gesture is in flight.
func (r *DragRecognizer) Active() bool {
	return r.active
}

// Value returns the most recent snapshot of the current gesture.
func (r *DragRecognizer) Value() DragValue {
	return r.value
}

// Begin starts a gesture at the sample's position. An invalid sample
// leaves the recognizer idle.
func (r *DragRecognizer) Begin(s Sample) {
	if !s.validPosition() {
		return
	}
	r.active = true
	r.startLocation = s.Position
	r.lastLocation = s.Position
	r.lastTime = s.Timestamp
	r.lastVelocity = spatial.Vec3{}
	r.value = DragValue{
		StartLocation:   s.Position,
		CurrentLocation: s.Position,
	}
}

// Update folds a new sample into the gesture and emits a snapshot.
// Invalid samples are dropped silently.
func (r *DragRecognizer) Update(s Sample) {
	if !r.active || !s.validPosition() {
		return
	}
	r.apply(s)
	if r.onChanged != nil {
		r.onChanged(r.value)
	}
}

// End finishes the gesture, folding in the final sample if valid, and
// emits the final snapshot. The recognizer returns to idle.
func (r *DragRecognizer) End(s Sample) {
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

func (r *DragRecognizer) apply(s Sample) {
	translation := s.Position.Sub(r.startLocation)

	velocity := r.lastVelocity
	if dt := s.Timestamp.Sub(r.lastTime); dt >= minSampleInterval {
		velocity = s.Position.Sub(r.lastLocation).Scale(1 / dt.Seconds())
	}

	r.value = DragValue{
		Translation:     translation,
		Velocity:        velocity,
		StartLocation:   r.startLocation,
		CurrentLocation: s.Position,
		Distance:        translation.Magnitude(),
	}
	r.lastLocation = s.Position
	r.lastTime = s.Timestamp
	r.lastVelocity = velocity
}
