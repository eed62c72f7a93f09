// Package correlate implements the BAF/LRR Pearson correlation at
// each of the three genotype classes (AA, AB, BB) once AlleleInference
// has resolved ALLELE_A/ALLELE_B, grounded on
// original_source/mochatools.c's cor_baf_lrr and get_cov blocks.
package correlate

import (
	"math"

	"github.com/dasnellings/mochatools/internal/numeric"
)

// Result holds Cor_BAF_LRR for the three genotype classes, in the
// order [AA, AB, BB].
type Result [3]float64

// Correlate computes Cor_BAF_LRR across samples whose genotype falls
// into each of AA/AB/BB, using the already-determined ALLELE_A and
// ALLELE_B allele indices. When either is undetermined (negative),
// all three classes are NaN, since the classes themselves cannot be
// assigned without knowing which allele is A and which is B.
func Correlate(alleleA, alleleB int, a0, a1 []int16, baf, lrr []float64) Result {
	var out Result
	out[0], out[1], out[2] = math.NaN(), math.NaN(), math.NaN()
	if alleleA < 0 || alleleB < 0 {
		return out
	}
	aA, aB := int16(alleleA), int16(alleleB)

	matches := [3]func(g0, g1 int16) bool{
		func(g0, g1 int16) bool { return g0 == aA && g1 == aA },
		func(g0, g1 int16) bool { return (g0 == aA && g1 == aB) || (g0 == aB && g1 == aA) },
		func(g0, g1 int16) bool { return g0 == aB && g1 == aB },
	}

	for class, match := range matches {
		var xs, ys []float64
		for i := range a0 {
			if a0[i] < 0 || a1[i] < 0 {
				continue
			}
			if !match(a0[i], a1[i]) {
				continue
			}
			if math.IsNaN(baf[i]) || math.IsNaN(lrr[i]) {
				continue
			}
			xs = append(xs, baf[i])
			ys = append(ys, lrr[i])
		}
		sxx, syy, sxy, _ := numeric.CovarianceSums(xs, ys)
		out[class] = numeric.Pearson(sxx, syy, sxy)
	}
	return out
}
