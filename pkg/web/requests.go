package web

import (
	"errors"
	"time"

	"github.com/muhittincamdali/go-gazekit/pkg/gaze"
	"github.com/muhittincamdali/go-gazekit/pkg/spatial"
)

// RegisterTargetRequest is the body for POST /api/targets.
type RegisterTargetRequest struct {
	ID      string      `json:"id"`
	DwellMS int         `json:"dwell_ms,omitempty"` // 0 selects the engine default
	Region  *RegionSpec `json:"region,omitempty"`
}

// Duration converts the requested dwell time, 0 meaning default.
func (r RegisterTargetRequest) Duration() time.Duration {
	if r.DwellMS <= 0 {
		return 0
	}
	return time.Duration(r.DwellMS) * time.Millisecond
}

// RegionSpec describes a hit region on the wire.
type RegionSpec struct {
	Type   string    `json:"type"` // "sphere" or "box"
	Center []float64 `json:"center,omitempty"`
	Radius float64   `json:"radius,omitempty"`
	Min    []float64 `json:"min,omitempty"`
	Max    []float64 `json:"max,omitempty"`
}

var errBadRegion = errors.New("region must be a sphere (center, radius) or box (min, max) with 3-component points")

// build converts the spec into a hit region. A nil spec yields a nil
// region: the target then relies on host-resolved gaze target ids.
func (r *RegionSpec) build() (gaze.Region, error) {
	if r == nil {
		return nil, nil
	}
	switch r.Type {
	case "sphere":
		center, ok := spatial.FromSlice(r.Center)
		if !ok || !center.IsValid() || r.Radius <= 0 {
			return nil, errBadRegion
		}
		return gaze.Sphere{Center: center, Radius: r.Radius}, nil
	case "box":
		min, okMin := spatial.FromSlice(r.Min)
		max, okMax := spatial.FromSlice(r.Max)
		if !okMin || !okMax || !min.IsValid() || !max.IsValid() {
			return nil, errBadRegion
		}
		return gaze.Box{Min: min, Max: max}, nil
	default:
		return nil, errBadRegion
	}
}
