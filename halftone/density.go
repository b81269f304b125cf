package halftone

import "math"

// Curve distorts a normalized value, usually in [0, 1].
type Curve func(float64) float64

// Identity leaves values untouched.
func Identity(v float64) float64 { return v }

// Sqrt lifts mid-tones.
func Sqrt(v float64) float64 { return math.Sqrt(v) }

// Power returns the curve v^gamma. Values of gamma below 1 push mid-tones
// toward full ink, values above 1 toward blank.
func Power(gamma float64) Curve {
	return func(v float64) float64 { return math.Pow(v, gamma) }
}

// MapDensity normalizes value by maxInput, runs it through curve, scales the
// result to maxOutput and rounds to the nearest integer. The result is always
// in [0, maxOutput]: values above maxInput or curves leaving [0, 1] are clamped,
// and a NaN curve result maps to 0.
//
// maxInput must be positive; zero yields 0.
func MapDensity(value uint32, curve Curve, maxInput, maxOutput uint32) uint32 {
	if maxInput == 0 {
		return 0
	}
	normalized := float64(value) / float64(maxInput)
	scaled := math.Round(curve(normalized) * float64(maxOutput))
	switch {
	case math.IsNaN(scaled), scaled <= 0:
		return 0
	case scaled >= float64(maxOutput):
		return maxOutput
	}
	return uint32(scaled)
}
