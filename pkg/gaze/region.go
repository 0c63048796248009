// Package gaze derives gaze-enter and gaze-exit transitions from a raw
// position feed by hit-testing each sample against registered target
// regions. It sits between the host's sample source and the dwell
// controller for feeds that deliver positions without a resolved
// target id.
package gaze

import "github.com/muhittincamdali/go-gazekit/pkg/spatial"

// Region is a hit-testable volume in engine space.
type Region interface {
	Contains(p spatial.Vec3) bool
}

// Sphere is a spherical hit region.
type Sphere struct {
	Center spatial.Vec3
	Radius float64
}

// Contains reports whether p lies inside or on the sphere.
func (s Sphere) Contains(p spatial.Vec3) bool {
	return p.DistanceTo(s.Center) <= s.Radius
}

// Box is an axis-aligned box hit region.
type Box struct {
	Min spatial.Vec3
	Max spatial.Vec3
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p spatial.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
