package gesture

import "time"

// PinchRecognizer turns a stream of absolute scale readings into
// PinchValue snapshots. The scale captured at Begin is the 1.0
// baseline; reported Scale is currentScale / startScale.
type PinchRecognizer struct {
	active bool

	startScale   float64
	lastScale    float64
	lastTime     time.Time
	lastVelocity float64

	value PinchValue

	onChanged func(PinchValue)
	onEnded   func(PinchValue)
}

// NewPinchRecognizer creates an idle pinch recognizer.
func NewPinchRecognizer() *PinchRecognizer {
	return &PinchRecognizer{}
}

// OnChanged sets the callback invoked with each mid-gesture snapshot.
func (r *PinchRecognizer) OnChanged(callback func(PinchValue)) {
	r.onChanged = callback
}

// OnEnded sets the callback invoked with the final snapshot.
func (r *PinchRecognizer) OnEnded(callback func(PinchValue)) {
	r.onEnded = callback
}

// Active reports whether a gesture is in flight.
func (r *PinchRecognizer) Active() bool {
	return r.active
}

// Value returns the most recent snapshot of the current gesture.
func (r *PinchRecognizer) Value() PinchValue {
	return r.value
}

// Begin starts a gesture with the sample's scale as baseline. An
// invalid or non-positive scale leaves the recognizer idle.
func (r *PinchRecognizer) Begin(s Sample) {
	if !s.validScale() {
		return
	}
	r.active = true
	r.startScale = s.Scale
	r.lastScale = s.Scale
	r.lastTime = s.Timestamp
	r.lastVelocity = 0
	r.value = PinchValue{
		Scale:        1,
		StartScale:   s.Scale,
		CurrentScale: s.Scale,
	}
}

// Update folds a new scale reading into the gesture and emits a
// snapshot. Invalid samples are dropped silently.
func (r *PinchRecognizer) Update(s Sample) {
	if !r.active || !s.validScale() {
		return
	}
	r.apply(s)
	if r.onChanged != nil {
		r.onChanged(r.value)
	}
}

// End finishes the gesture, folding in the final sample if valid, and
// emits the final snapshot. The recognizer returns to idle.
func (r *PinchRecognizer) End(s Sample) {
	if !r.active {
		return
	}
	if s.validScale() {
		r.apply(s)
	}
	final := r.value
	r.active = false
	if r.onEnded != nil {
		r.onEnded(final)
	}
}

func (r *PinchRecognizer) apply(s Sample) {
	velocity := r.lastVelocity
	if dt := s.Timestamp.Sub(r.lastTime); dt >= minSampleInterval {
		velocity = (s.Scale - r.lastScale) / r.startScale / dt.Seconds()
	}

	r.value = PinchValue{
		Scale:        s.Scale / r.startScale,
		Velocity:     velocity,
		StartScale:   r.startScale,
		CurrentScale: s.Scale,
	}
	r.lastScale = s.Scale
	r.lastTime = s.Timestamp
	r.lastVelocity = velocity
}
