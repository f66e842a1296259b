// Package metrics holds the pure derived-value computations shown next to
// every record list: balances, calorie targets, exam flags, cardio pace,
// unit prices and lifting progress. Nothing in here does I/O.
package metrics

import "math"

// roundHalfUp rounds .5 towards positive infinity, matching the rounding
// users see in the UI (2068.5 -> 2069, -0.5 -> 0).
func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

// Round is roundHalfUp as an int.
func Round(value float64) int {
	return int(roundHalfUp(value))
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
