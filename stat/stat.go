// Package stat holds the few descriptive statistics shared by the engines.
//
// Deviations are population ones (divide by n) to match spreadsheet STDEV.P.
package stat

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// Mean returns the arithmetic mean of xs, or NaN if xs is empty.
// The mean of equal values is that value exactly.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	if flat(xs) {
		return xs[0]
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation of xs around mean.
// It is exactly 0 when all values are equal, whatever the rounding of mean.
func StdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	if flat(xs) {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += (x - mean) * (x - mean)
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// flat reports whether all values of xs are equal.
func flat(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// Median returns the median of xs, the mean of the two middle values when
// len(xs) is even. It returns zero for an empty slice.
func Median(xs []decimal.Decimal) decimal.Decimal {
	if len(xs) == 0 {
		return decimal.Zero
	}
	sorted := slices.Clone(xs)
	slices.SortFunc(sorted, decimal.Decimal.Cmp)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}
