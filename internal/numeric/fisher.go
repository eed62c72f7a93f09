package numeric

import "math"

// FisherTwoTailed returns the two-tailed p-value of Fisher's exact
// test on the 2x2 table [[a,b],[c,d]] via the standard
// "sum probabilities no larger than the observed table" hypergeometric
// enumeration (the method used by R's fisher.test).
func FisherTwoTailed(a, b, c, d int) float64 {
	n := a + b + c + d
	rowA := a + b
	rowB := c + d
	colA := a + c

	lo := 0
	if colA-rowB > 0 {
		lo = colA - rowB
	}
	hi := rowA
	if colA < hi {
		hi = colA
	}

	logDenom := logFactorial(n) - logFactorial(colA) - logFactorial(n-colA)
	hyper := func(x int) float64 {
		return math.Exp(logFactorial(rowA) - logFactorial(x) - logFactorial(rowA-x) +
			logFactorial(rowB) - logFactorial(colA-x) - logFactorial(rowB-colA+x) - logDenom)
	}

	pObs := hyper(a)
	const eps = 1e-7
	var total float64
	for x := lo; x <= hi; x++ {
		px := hyper(x)
		if px <= pObs*(1+eps) {
			total += px
		}
	}
	if total > 1 {
		total = 1
	}
	return total
}

func logFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n + 1))
	return v
}
