package spatial

import "fmt"

// Conversion factors between the units the presentation layer offers.
const (
	centimetersPerMeter = 100.0
	inchesPerMeter      = 39.3700787402
	metersPerKilometer  = 1000.0
)

// MetersToCentimeters converts meters to centimeters.
func MetersToCentimeters(m float64) float64 {
	return m * centimetersPerMeter
}

// CentimetersToMeters converts centimeters to meters.
func CentimetersToMeters(cm float64) float64 {
	return cm / centimetersPerMeter
}

// MetersToInches converts meters to inches.
func MetersToInches(m float64) float64 {
	return m * inchesPerMeter
}

// InchesToMeters converts inches to meters.
func InchesToMeters(in float64) float64 {
	return in / inchesPerMeter
}

// FormatDistance renders a distance in meters as a human-readable
// string, picking centimeters below 1 m, meters below 1 km, and
// kilometers above, always with one decimal place.
func FormatDistance(meters float64) string {
	switch {
	case meters < 1:
		return fmt.Sprintf("%.1f cm", MetersToCentimeters(meters))
	case meters < metersPerKilometer:
		return fmt.Sprintf("%.1f m", meters)
	default:
		return fmt.Sprintf("%.1f km", meters/metersPerKilometer)
	}
}
