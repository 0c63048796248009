// Package spatial provides the vector and angle math shared by the
// interaction engine: dwell routing, gesture snapshots, and distance
// formatting for presentation layers.
//
// Two APIs coexist. Vec3 is the typed form used inside the engine. The
// slice-based functions (Distance, Magnitude, ...) accept raw []float64
// from the wire and apply a permissive policy: malformed input (wrong
// dimension) yields zero rather than an error, so a bad sample can never
// stall the interaction loop.
package spatial

import "math"

// Vec3 is a point or direction in engine space. Units are meters.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the Euclidean norm of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector
// normalizes to itself rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec3{}
	}
	return v.Scale(1 / mag)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// DistanceTo returns the Euclidean distance from v to o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Magnitude()
}

// IsValid reports whether every component of v is finite.
func (v Vec3) IsValid() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// FromSlice builds a Vec3 from a 3-component slice. ok is false for any
// other length.
func FromSlice(s []float64) (v Vec3, ok bool) {
	if len(s) != 3 {
		return Vec3{}, false
	}
	return Vec3{s[0], s[1], s[2]}, true
}

// Distance returns the Euclidean distance between two 3-component
// vectors, or 0 if either input is not 3-dimensional.
func Distance(a, b []float64) float64 {
	va, ok := FromSlice(a)
	if !ok {
		return 0
	}
	vb, ok := FromSlice(b)
	if !ok {
		return 0
	}
	return va.DistanceTo(vb)
}

// Magnitude returns the Euclidean norm of a 3-component vector, or 0 if
// the input is not 3-dimensional.
func Magnitude(v []float64) float64 {
	vv, ok := FromSlice(v)
	if !ok {
		return 0
	}
	return vv.Magnitude()
}

// Normalize returns the unit vector of a 3-component vector. The zero
// vector and malformed input both normalize to the zero vector.
func Normalize(v []float64) []float64 {
	vv, ok := FromSlice(v)
	if !ok {
		return []float64{0, 0, 0}
	}
	n := vv.Normalize()
	return []float64{n.X, n.Y, n.Z}
}

// Dot returns the dot product of two 3-component vectors, or 0 on
// malformed input.
func Dot(a, b []float64) float64 {
	va, ok := FromSlice(a)
	if !ok {
		return 0
	}
	vb, ok := FromSlice(b)
	if !ok {
		return 0
	}
	return va.Dot(vb)
}

// Cross returns the cross product of two 3-component vectors, or the
// zero vector on malformed input.
func Cross(a, b []float64) []float64 {
	va, ok := FromSlice(a)
	if !ok {
		return []float64{0, 0, 0}
	}
	vb, ok := FromSlice(b)
	if !ok {
		return []float64{0, 0, 0}
	}
	c := va.Cross(vb)
	return []float64{c.X, c.Y, c.Z}
}

// IsValidVector reports whether v has exactly 3 components, all finite.
func IsValidVector(v []float64) bool {
	if len(v) != 3 {
		return false
	}
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

// IsValidPoint reports whether p has exactly 3 components, all finite.
func IsValidPoint(p []float64) bool {
	return IsValidVector(p)
}

// Lerp performs linear interpolation between two values.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts a value to a range.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
