// Package numeric provides the pure statistical primitives used by the
// annotate pipeline: mean/variance, median, covariance accumulators,
// the incomplete beta function, exact and approximate binomial and
// Mann-Whitney tail probabilities, and Fisher's exact test.
//
// None of these functions hold state across calls (the binomial exact
// triangular cache is the one exception, and it is passed in explicitly
// by the caller via *BinomCache rather than kept as package state).
package numeric

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// MeanVariance returns the mean and unbiased variance of the non-NaN
// elements of x, along with how many of those there were. ok is false
// when fewer than two values are present, mirroring the "insufficient
// data" failure mode every kernel in this package shares.
func MeanVariance(x []float64) (mean, variance float64, n int, ok bool) {
	buf := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			buf = append(buf, v)
		}
	}
	n = len(buf)
	if n < 2 {
		return 0, 0, n, false
	}
	mean, variance = stat.MeanVariance(buf, nil)
	return mean, variance, n, true
}

// Median returns the median of x, found by sorting a copy; for even
// length it is the mean of the two middle elements. Callers are
// expected to have already filtered NaN/missing values via their own
// index map; an empty slice returns NaN.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, x)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// CovarianceSums accumulates the centred sums of squares and cross
// products needed for a Pearson correlation: Σ(x-x̄)², Σ(y-ȳ)², and
// Σ(x-x̄)(y-ȳ). x and y must be the same length and contain no NaNs;
// callers pre-filter via an index map (see internal/correlate).
func CovarianceSums(x, y []float64) (sxx, syy, sxy float64, n int) {
	n = len(x)
	if n == 0 {
		return 0, 0, 0, 0
	}
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	mx, my := sumX/float64(n), sumY/float64(n)
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	return sxx, syy, sxy, n
}

// Pearson returns the Pearson correlation coefficient given the
// centred sums from CovarianceSums. It returns NaN when either centred
// sum of squares is zero (no variance in one of the two variables).
func Pearson(sxx, syy, sxy float64) float64 {
	denom := sxx * syy
	if denom <= 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(denom)
}
