package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// AmplitudeDB converts linear amplitude to dB with the input floored at
// floor, so the result is always finite for a positive floor.
func AmplitudeDB(linear, floor float64) float64 {
	return 20 * math.Log10(math.Max(linear, floor))
}

// PowerDB converts linear power to dB with the input floored at floor.
func PowerDB(power, floor float64) float64 {
	return 10 * math.Log10(math.Max(power, floor))
}
