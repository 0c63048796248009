package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

const epsilon = 1e-6

func sampleAt(t0 time.Time, offset time.Duration, x, y, z float64) Sample {
	return Sample{
		Position:  spatial.Vec3{X: x, Y: y, Z: z},
		Timestamp: t0.Add(offset),
	}
}

func TestDragRecognizer_TranslationAndDistance(t *testing.T) {
	t0 := time.Now()
	r := NewDragRecognizer()

	var changed []DragValue
	r.OnChanged(func(v DragValue) { changed = append(changed, v) })

	r.Begin(sampleAt(t0, 0, 0, 0, 0))
	r.Update(sampleAt(t0, 100*time.Millisecond, 1, 1, 1))

	if len(changed) != 1 {
		t.Fatalf("Expected 1 changed event, got %d", len(changed))
	}
	v := changed[0]
	if math.Abs(v.Distance-math.Sqrt(3)) > epsilon {
		t.Errorf("Expected distance sqrt(3), got %v", v.Distance)
	}
	if v.Translation != (spatial.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Unexpected translation: %+v", v.Translation)
	}
	if v.StartLocation != (spatial.Vec3{}) {
		t.Errorf("Unexpected start location: %+v", v.StartLocation)
	}

	// 1m of X in 100ms is 10 m/s
	if math.Abs(v.Velocity.X-10) > epsilon {
		t.Errorf("Expected velocity.X 10, got %v", v.Velocity.X)
	}
}

func TestDragRecognizer_ZeroDtReusesVelocity(t *testing.T) {
	t0 := time.Now()
	r := NewDragRecognizer()

	r.Begin(sampleAt(t0, 0, 0, 0, 0))
	r.Update(sampleAt(t0, 100*time.Millisecond, 1, 0, 0))
	first := r.Value().Velocity

	// Same timestamp: velocity must hold, not divide by zero
	r.Update(sampleAt(t0, 100*time.Millisecond, 2, 0, 0))
	v := r.Value()
	if v.Velocity != first {
		t.Errorf("Expected held velocity %+v, got %+v", first, v.Velocity)
	}
	if !v.Velocity.IsValid() {
		t.Errorf("Velocity must stay finite, got %+v", v.Velocity)
	}
	// Translation still advances
	if math.Abs(v.Translation.X-2) > epsilon {
		t.Errorf("Expected translation.X 2, got %v", v.Translation.X)
	}
}

func TestDragRecognizer_DropsMalformedSamples(t *testing.T) {
	t0 := time.Now()
	r := NewDragRecognizer()

	changed := 0
	r.OnChanged(func(DragValue) { changed++ })

	r.Begin(sampleAt(t0, 0, 0, 0, 0))
	r.Update(Sample{
		Position:  spatial.Vec3{X: math.NaN(), Y: 0, Z: 0},
		Timestamp: t0.Add(10 * time.Millisecond),
	})
	r.Update(Sample{
		Position:  spatial.Vec3{X: 1, Y: math.Inf(1), Z: 0},
		Timestamp: t0.Add(20 * time.Millisecond),
	})

	if changed != 0 {
		t.Errorf("Expected malformed samples to be dropped, got %d events", changed)
	}

	r.Update(sampleAt(t0, 30*time.Millisecond, 0.5, 0, 0))
	if changed != 1 {
		t.Fatalf("Expected the valid sample to emit, got %d events", changed)
	}
	if !r.Value().Velocity.IsValid() || !r.Value().Translation.IsValid() {
		t.Errorf("Snapshot contains non-finite values: %+v", r.Value())
	}
}

func TestDragRecognizer_EndEmitsOnceAndResets(t *testing.T) {
	t0 := time.Now()
	r := NewDragRecognizer()

	ended := 0
	var final DragValue
	r.OnEnded(func(v DragValue) {
		ended++
		final = v
	})

	r.Begin(sampleAt(t0, 0, 0, 0, 0))
	r.Update(sampleAt(t0, 50*time.Millisecond, 1, 0, 0))
	r.End(sampleAt(t0, 100*time.Millisecond, 2, 0, 0))

	if ended != 1 {
		t.Fatalf("Expected 1 ended event, got %d", ended)
	}
	if math.Abs(final.Distance-2) > epsilon {
		t.Errorf("Expected final distance 2, got %v", final.Distance)
	}
	if r.Active() {
		t.Error("Expected recognizer idle after End")
	}

	// Updates after End are ignored until a new Begin
	r.Update(sampleAt(t0, 200*time.Millisecond, 5, 0, 0))
	if ended != 1 {
		t.Errorf("Expected no events after End, got %d", ended)
	}

	// A fresh Begin starts from a new baseline
	r.Begin(sampleAt(t0, 300*time.Millisecond, 10, 0, 0))
	r.Update(sampleAt(t0, 350*time.Millisecond, 11, 0, 0))
	if math.Abs(r.Value().Distance-1) > epsilon {
		t.Errorf("Expected fresh baseline, distance 1, got %v", r.Value().Distance)
	}
}

func TestDragRecognizer_BeginWithInvalidSampleStaysIdle(t *testing.T) {
	r := NewDragRecognizer()
	r.Begin(Sample{Position: spatial.Vec3{X: math.NaN()}, Timestamp: time.Now()})
	if r.Active() {
		t.Error("Expected recognizer to stay idle for invalid Begin")
	}
}
