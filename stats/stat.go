// Package stats holds the small numeric helpers feature synthesis depends on.
// Rolling inputs come from a series that uses NaN for missing days, so all
// helpers skip NaN the way the training pipeline did.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// NaNMean returns the mean of the non-NaN values in v, or NaN if none exist.
func NaNMean(v []float64) float64 {
	kept := dropNaN(v)
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}

// NaNPopStdDev returns the population standard deviation (denominator N, not
// N-1) of the non-NaN values in v, or NaN if none exist.
func NaNPopStdDev(v []float64) float64 {
	kept := dropNaN(v)
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(kept, nil)
}

func dropNaN(v []float64) []float64 {
	kept := make([]float64, 0, len(v))
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		kept = append(kept, x)
	}
	return kept
}
