package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Min[A constraints.Ordered](a, b A) A {
	if a < b {
		return a
	}
	return b
}

func Max[A constraints.Ordered](a, b A) A {
	if a > b {
		return a
	}
	return b
}

// Round6 rounds to 6 decimal places. Upstream coercions leave float noise
// that would otherwise show up in reported durations.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
