package protocol

import (
	"math"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/gesture"
	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// =============================================================================
// Helper functions for creating messages
// =============================================================================

// NewGazeMessage creates a gaze sample message
func NewGazeMessage(position spatial.Vec3, sampleTime time.Time, targetID string) (*Message, error) {
	return NewMessage(TypeGaze, GazeSampleData{
		Position: []float64{position.X, position.Y, position.Z},
		SampleTS: sampleTime.UnixMicro(),
		TargetID: targetID,
	})
}

// NewGazeLostMessage creates a gaze message marking tracking loss
func NewGazeLostMessage(sampleTime time.Time) (*Message, error) {
	return NewMessage(TypeGaze, GazeSampleData{
		SampleTS: sampleTime.UnixMicro(),
		Lost:     true,
	})
}

// NewGestureMessage creates a gesture sample message
func NewGestureMessage(kind GestureKind, phase GesturePhase, sample gesture.Sample) (*Message, error) {
	data := GestureSampleData{
		Kind:     kind,
		Phase:    phase,
		Scale:    sample.Scale,
		Angle:    sample.Angle,
		SampleTS: sample.Timestamp.UnixMicro(),
	}
	if kind == KindDrag || kind == KindHover {
		data.Position = []float64{sample.Position.X, sample.Position.Y, sample.Position.Z}
	}
	return NewMessage(TypeGesture, data)
}

// Sample converts wire gesture data back into a recognizer sample.
// A missing or wrong-dimension position yields an invalid position the
// recognizers will drop.
func (d GestureSampleData) Sample() gesture.Sample {
	s := gesture.Sample{
		Scale:     d.Scale,
		Angle:     d.Angle,
		Timestamp: time.UnixMicro(d.SampleTS),
	}
	if v, ok := spatial.FromSlice(d.Position); ok {
		s.Position = v
	} else {
		s.Position = spatial.Vec3{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return s
}

// NewDwellMessage creates a dwell progress broadcast
func NewDwellMessage(targets []TargetProgressData) (*Message, error) {
	return NewMessage(TypeDwell, DwellData{Targets: targets})
}

// NewActivationMessage creates an activation broadcast
func NewActivationMessage(targetID string) (*Message, error) {
	return NewMessage(TypeActivation, ActivationData{TargetID: targetID})
}

// NewDragMessage creates a drag snapshot broadcast
func NewDragMessage(v gesture.DragValue) (*Message, error) {
	return NewMessage(TypeDrag, v)
}

// NewPinchMessage creates a pinch snapshot broadcast
func NewPinchMessage(v gesture.PinchValue) (*Message, error) {
	return NewMessage(TypePinch, v)
}

// NewRotateMessage creates a rotation snapshot broadcast
func NewRotateMessage(v gesture.RotationValue) (*Message, error) {
	return NewMessage(TypeRotate, v)
}

// NewHoverMessage creates a hover snapshot broadcast
func NewHoverMessage(v gesture.HoverValue) (*Message, error) {
	return NewMessage(TypeHover, v)
}

// NewStateMessage creates an engine state broadcast
func NewStateMessage(state StateData) (*Message, error) {
	return NewMessage(TypeState, state)
}

// NewPongMessage creates a pong response for a ping
func NewPongMessage(ping PingData) (*Message, error) {
	now := time.Now().UnixMilli()
	return NewMessage(TypePong, PongData{
		ID:        ping.ID,
		PingTS:    ping.Timestamp,
		PongTS:    now,
		LatencyMs: now - ping.Timestamp,
	})
}
