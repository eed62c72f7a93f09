package numeric

import "math"

// WelchTTest returns the two-tailed p-value of Welch's t-test between
// a and b. Either sample having fewer than two observations is
// "insufficient data" and yields the +Inf sentinel, exactly as
// original_source/mochatools.c returns HUGE_VAL in the same situation.
func WelchTTest(a, b []float64) float64 {
	ma, va, na, oka := MeanVariance(a)
	mb, vb, nb, okb := MeanVariance(b)
	if !oka || !okb {
		return math.Inf(1)
	}

	se2 := va/float64(na) + vb/float64(nb)
	if se2 <= 0 {
		return math.Inf(1)
	}
	t := (ma - mb) / math.Sqrt(se2)

	fa, fb := float64(na), float64(nb)
	v := se2 * se2 / (va*va/(fa*fa*(fa-1)) + vb*vb/(fb*fb*(fb-1)))

	x := v / (v + t*t)
	return IncompleteBeta(x, v/2, 0.5)
}
