package spatial

import (
	"math"
	"testing"
)

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{0.5, "50.0 cm"},
		{0.015, "1.5 cm"},
		{1.5, "1.5 m"},
		{1.0, "1.0 m"},
		{999.4, "999.4 m"}, // still meters, just under the km threshold
		{1500, "1.5 km"},
		{1000, "1.0 km"},
	}
	for _, c := range cases {
		if got := FormatDistance(c.meters); got != c.want {
			t.Errorf("FormatDistance(%v): expected %q, got %q", c.meters, c.want, got)
		}
	}
}

func TestUnitConversions_RoundTrip(t *testing.T) {
	for _, m := range []float64{0.01, 0.3048, 1, 2.5, 100} {
		if got := CentimetersToMeters(MetersToCentimeters(m)); math.Abs(got-m) > epsilon {
			t.Errorf("cm round trip %v: got %v", m, got)
		}
		if got := InchesToMeters(MetersToInches(m)); math.Abs(got-m) > epsilon {
			t.Errorf("inch round trip %v: got %v", m, got)
		}
	}
}

func TestMetersToInches(t *testing.T) {
	// 1 inch is exactly 25.4 mm
	if got := InchesToMeters(1); math.Abs(got-0.0254) > 1e-4 {
		t.Errorf("Expected ~0.0254, got %v", got)
	}
}
