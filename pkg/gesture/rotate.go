package gesture

import (
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// RotationRecognizer turns a stream of accumulated angle readings into
// RotationValue snapshots. The reported Rotation is relative to the
// angle captured at Begin and wrapped to (-π, π]; the raw accumulated
// angles are preserved in StartRotation/CurrentRotation so a two-turn
// twist is distinguishable from no twist.
type RotationRecognizer struct {
	active bool

	startAngle   float64
	lastAngle    float64
	lastTime     time.Time
	lastVelocity float64

	value RotationValue

	onChanged func(RotationValue)
	onEnded   func(RotationValue)
}

// NewRotationRecognizer creates an idle rotation recognizer.
func NewRotationRecognizer() *RotationRecognizer {
	return &RotationRecognizer{}
}

// OnChanged sets the callback invoked with each mid-gesture snapshot.
func (r *RotationRecognizer) OnChanged(callback func(RotationValue)) {
	r.onChanged = callback
}

// OnEnded sets the callback invoked with the final snapshot.
func (r *RotationRecognizer) OnEnded(callback func(RotationValue)) {
	r.onEnded = callback
}

// Active reports whether a gesture is in flight.
func (r *RotationRecognizer) Active() bool {
	return r.active
}

// Value returns the most recent snapshot of the current gesture.
func (r *RotationRecognizer) Value() RotationValue {
	return r.value
}

// Begin starts a gesture with the sample's angle as baseline. An
// invalid sample leaves the recognizer idle.
func (r *RotationRecognizer) Begin(s Sample) {
	if !s.validAngle() {
		return
	}
	r.active = true
	r.startAngle = s.Angle
	r.lastAngle = s.Angle
	r.lastTime = s.Timestamp
	r.lastVelocity = 0
	r.value = RotationValue{
		StartRotation:   s.Angle,
		CurrentRotation: s.Angle,
	}
}

// Update folds a new angle reading into the gesture and emits a
// snapshot. Invalid samples are dropped silently.
func (r *RotationRecognizer) Update(s Sample) {
	if !r.active || !s.validAngle() {
		return
	}
	r.apply(s)
	if r.onChanged != nil {
		r.onChanged(r.value)
	}
}

// End finishes the gesture, folding in the final sample if valid, and
// emits the final snapshot. The recognizer returns to idle.
func (r *RotationRecognizer) End(s Sample) {
	if !r.active {
		return
	}
	if s.validAngle() {
		r.apply(s)
	}
	final := r.value
	r.active = false
	if r.onEnded != nil {
		r.onEnded(final)
	}
}

func (r *RotationRecognizer) apply(s Sample) {
	velocity := r.lastVelocity
	if dt := s.Timestamp.Sub(r.lastTime); dt >= minSampleInterval {
		velocity = (s.Angle - r.lastAngle) / dt.Seconds()
	}

	r.value = RotationValue{
		Rotation:        spatial.WrapAngle(s.Angle - r.startAngle),
		Velocity:        velocity,
		StartRotation:   r.startAngle,
		CurrentRotation: s.Angle,
	}
	r.lastAngle = s.Angle
	r.lastTime = s.Timestamp
	r.lastVelocity = velocity
}
