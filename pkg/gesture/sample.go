package gesture

import (
	"math"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// minSampleInterval guards the velocity division: samples closer
// together than this reuse the previous velocity instead of dividing by
// a degenerate dt.
const minSampleInterval = time.Millisecond

// Sample is one raw input reading from the host gesture source. Not
// every field is meaningful to every recognizer: drag and hover read
// Position, pinch reads Scale, rotation reads Angle.
type Sample struct {
	Position  spatial.Vec3
	Scale     float64
	Angle     float64
	Timestamp time.Time
}

// validPosition reports whether the sample can feed a position-based
// recognizer.
func (s Sample) validPosition() bool {
	return s.Position.IsValid() && !s.Timestamp.IsZero()
}

// validScale reports whether the sample can feed the pinch recognizer.
// Scale readings are absolute and must be positive.
func (s Sample) validScale() bool {
	return isFinitePositive(s.Scale) && !s.Timestamp.IsZero()
}

// validAngle reports whether the sample can feed the rotation
// recognizer.
func (s Sample) validAngle() bool {
	return isFinite(s.Angle) && !s.Timestamp.IsZero()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isFinitePositive(f float64) bool {
	return isFinite(f) && f > 0
}
