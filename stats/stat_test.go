package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaNMean(t *testing.T) {
	testData := map[string]struct {
		v        []float64
		expected float64
	}{
		"empty":     {v: nil, expected: math.NaN()},
		"all nan":   {v: []float64{math.NaN(), math.NaN()}, expected: math.NaN()},
		"skips nan": {v: []float64{1, math.NaN(), 3}, expected: 2},
		"plain":     {v: []float64{2, 4, 6}, expected: 4},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got := NaNMean(td.v)
			if math.IsNaN(td.expected) {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, td.expected, got, 1e-12)
		})
	}
}

func TestNaNPopStdDev(t *testing.T) {
	testData := map[string]struct {
		v        []float64
		expected float64
	}{
		"empty":    {v: nil, expected: math.NaN()},
		"constant": {v: []float64{10, 10, 10}, expected: 0},
		// population variance divides by N: var({1,2,3}) = 2/3
		"population denominator": {v: []float64{1, 2, 3}, expected: math.Sqrt(2.0 / 3.0)},
		"skips nan":              {v: []float64{1, math.NaN(), 3}, expected: 1},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got := NaNPopStdDev(td.v)
			if math.IsNaN(td.expected) {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, td.expected, got, 1e-12)
		})
	}
}
