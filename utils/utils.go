package utils

import "math"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Round2 rounds to 2 decimal places at the presentation boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
