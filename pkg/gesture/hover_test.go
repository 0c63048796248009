package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

func TestHoverRecognizer_DistanceFromReference(t *testing.T) {
	t0 := time.Now()
	r := NewHoverRecognizer(spatial.Vec3{X: 0, Y: 0, Z: 0})

	r.Begin(sampleAt(t0, 0, 0, 0, 0.5))
	if got := r.Value().Distance; math.Abs(got-0.5) > epsilon {
		t.Errorf("Expected distance 0.5 at begin, got %v", got)
	}

	r.Update(sampleAt(t0, 100*time.Millisecond, 0, 3, 4))
	if got := r.Value().Distance; math.Abs(got-5) > epsilon {
		t.Errorf("Expected distance 5, got %v", got)
	}
}

func TestHoverRecognizer_VelocityVector(t *testing.T) {
	t0 := time.Now()
	r := NewHoverRecognizer(spatial.Vec3{})

	r.Begin(sampleAt(t0, 0, 0, 0, 1))
	// 0.2m of Y in 200ms = 1 m/s
	r.Update(sampleAt(t0, 200*time.Millisecond, 0, 0.2, 1))

	v := r.Value().Velocity
	if math.Abs(v.Y-1) > epsilon || math.Abs(v.X) > epsilon || math.Abs(v.Z) > epsilon {
		t.Errorf("Expected velocity (0, 1, 0), got %+v", v)
	}
}

func TestHoverRecognizer_EndAndInvalidSamples(t *testing.T) {
	t0 := time.Now()
	r := NewHoverRecognizer(spatial.Vec3{})

	changed, ended := 0, 0
	r.OnChanged(func(HoverValue) { changed++ })
	r.OnEnded(func(HoverValue) { ended++ })

	r.Begin(sampleAt(t0, 0, 0, 0, 1))
	r.Update(Sample{
		Position:  spatial.Vec3{X: math.Inf(1)},
		Timestamp: t0.Add(10 * time.Millisecond),
	})
	if changed != 0 {
		t.Errorf("Expected invalid sample dropped, got %d events", changed)
	}

	// End with an invalid sample still emits the last good snapshot
	r.End(Sample{Position: spatial.Vec3{X: math.NaN()}, Timestamp: t0.Add(20 * time.Millisecond)})
	if ended != 1 {
		t.Errorf("Expected 1 ended event, got %d", ended)
	}
	if r.Active() {
		t.Error("Expected recognizer idle after End")
	}
}
