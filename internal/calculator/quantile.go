package calculator

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile returns the pth percentile (0-100) of values, linearly
// interpolated between order statistics. The input is not mutated.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("cannot take percentile of empty series")
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile must be within [0, 100], got %f", p)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return stat.Quantile(p/100, stat.LinInterp, sorted, nil), nil
}
