package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves v by step toward target without crossing it
// Step is a magnitude, sign is derived from the direction of target
func Approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

// Round1 rounds to one fraction digit, matching toFixed(1) for display values
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
