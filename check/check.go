package check

import (
	"fmt"
	"math"

	"github.com/fatih/color"

	"github.com/alessandrocasali86-boop/lumen-nidi-tda/util"
)

// MaxPrefixAbsError is the largest absolute difference over the common
// prefix of the two sequences. Zero when either is empty.
func MaxPrefixAbsError(got, expected []float64) float64 {
	n := util.Min(len(got), len(expected))
	var maxErr float64
	for i := 0; i < n; i++ {
		maxErr = util.Max(maxErr, math.Abs(got[i]-expected[i]))
	}
	return maxErr
}

// ValidateExpected compares a derived eighth-unit rest sequence against a
// known reference. Diagnostic only: a length mismatch warns, nothing here
// ever fails the run.
func ValidateExpected(label string, got, expected []float64) {
	if len(got) != len(expected) {
		color.Set(color.FgYellow)
		fmt.Print("[WARN]")
		color.Unset()
		fmt.Printf(" %s: got %d rests, expected %d.\n", label, len(got), len(expected))
	}
	color.Set(color.FgCyan)
	fmt.Print("[CHECK]")
	color.Unset()
	fmt.Printf(" %s: max prefix abs error (eighth units) = %.6f\n", label, MaxPrefixAbsError(got, expected))
}
