package spatial

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func TestDistance_UnitCube(t *testing.T) {
	d := Distance([]float64{0, 0, 0}, []float64{1, 1, 1})
	if math.Abs(d-math.Sqrt(3)) > epsilon {
		t.Errorf("Expected sqrt(3), got %v", d)
	}
}

func TestDistance_MalformedInputReturnsZero(t *testing.T) {
	if d := Distance([]float64{0, 0}, []float64{1, 1, 1}); d != 0 {
		t.Errorf("Expected 0 for 2-component input, got %v", d)
	}
	if d := Distance(nil, []float64{1, 1, 1}); d != 0 {
		t.Errorf("Expected 0 for nil input, got %v", d)
	}
	if d := Distance([]float64{0, 0, 0, 0}, []float64{1, 1, 1}); d != 0 {
		t.Errorf("Expected 0 for 4-component input, got %v", d)
	}
}

func TestMagnitude(t *testing.T) {
	if m := Magnitude([]float64{3, 4, 0}); math.Abs(m-5) > epsilon {
		t.Errorf("Expected 5, got %v", m)
	}
	if m := Magnitude([]float64{1, 2}); m != 0 {
		t.Errorf("Expected 0 for malformed input, got %v", m)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	n := Normalize([]float64{0, 0, 0})
	for i, c := range n {
		if c != 0 {
			t.Errorf("Expected zero vector, component %d = %v", i, c)
		}
	}
}

func TestNormalize_UnitLength(t *testing.T) {
	n := Normalize([]float64{2, -3, 6})
	mag := Magnitude(n)
	if math.Abs(mag-1) > epsilon {
		t.Errorf("Expected unit length, got %v", mag)
	}
}

func TestDot_Orthogonal(t *testing.T) {
	if d := Dot([]float64{1, 0, 0}, []float64{0, 1, 0}); d != 0 {
		t.Errorf("Expected 0, got %v", d)
	}
}

func TestCross_RightHanded(t *testing.T) {
	c := Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	want := []float64{0, 0, 1}
	for i := range want {
		if math.Abs(c[i]-want[i]) > epsilon {
			t.Errorf("Component %d: expected %v, got %v", i, want[i], c[i])
		}
	}
}

func TestIsValidVector(t *testing.T) {
	if !IsValidVector([]float64{1, 2, 3}) {
		t.Error("Expected valid for finite 3-vector")
	}
	if IsValidVector([]float64{1, 2}) {
		t.Error("Expected invalid for 2-vector")
	}
	if IsValidVector([]float64{1, math.NaN(), 3}) {
		t.Error("Expected invalid for NaN component")
	}
	if IsValidVector([]float64{1, 2, math.Inf(1)}) {
		t.Error("Expected invalid for infinite component")
	}
}

func TestVec3_NormalizeAndCross(t *testing.T) {
	v := Vec3{X: 0, Y: 0, Z: 0}
	if n := v.Normalize(); n != (Vec3{}) {
		t.Errorf("Expected zero vector, got %+v", n)
	}

	c := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if math.Abs(c.Z-1) > epsilon || c.X != 0 || c.Y != 0 {
		t.Errorf("Expected +Z, got %+v", c)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(1.5, 0, 1); v != 1 {
		t.Errorf("Expected 1, got %v", v)
	}
	if v := Clamp(-0.5, 0, 1); v != 0 {
		t.Errorf("Expected 0, got %v", v)
	}
	if v := Clamp(0.5, 0, 1); v != 0.5 {
		t.Errorf("Expected 0.5, got %v", v)
	}
}
