package numeric

import (
	"math"

	"golang.org/x/exp/slices"
)

type rankedValue struct {
	v   float64
	grp int
}

// MannWhitneyUStat computes the Mann-Whitney U statistic for a
// (group 0) against b (group 1), the smaller of U and its complement
// n_a*n_b-U, and the tie
// correction accumulator Σ(t³-t) over tie groups of the merged,
// ranked sample. Ties are resolved with the usual average-rank
// convention.
func MannWhitneyUStat(a, b []float64) (u, uMin, ties float64) {
	na, nb := len(a), len(b)
	n := na + nb
	items := make([]rankedValue, 0, n)
	for _, x := range a {
		items = append(items, rankedValue{x, 0})
	}
	for _, x := range b {
		items = append(items, rankedValue{x, 1})
	}
	slices.SortFunc(items, func(p, q rankedValue) int {
		switch {
		case p.v < q.v:
			return -1
		case p.v > q.v:
			return 1
		default:
			return 0
		}
	})

	var rankSumA float64
	i := 0
	for i < n {
		j := i
		for j < n && items[j].v == items[i].v {
			j++
		}
		avgRank := float64(i+j+1) / 2
		t := float64(j - i)
		ties += t*t*t - t
		for k := i; k < j; k++ {
			if items[k].grp == 0 {
				rankSumA += avgRank
			}
		}
		i = j
	}

	fa, fb := float64(na), float64(nb)
	u = rankSumA - fa*(fa+1)/2
	uB := fa*fb - u
	uMin = math.Min(u, uB)
	return u, uMin, ties
}

// MannWhitneyP returns the two-sided p-value for the Mann-Whitney U
// test on a against b, choosing among the size-1 special case, the
// normal approximation (either sample ≥ 8), and the exact 1947
// recurrence, per spec.md §4.1.
func MannWhitneyP(a, b []float64) float64 {
	na, nb := len(a), len(b)
	if na == 0 || nb == 0 {
		return math.Inf(1)
	}

	_, uMin, ties := MannWhitneyUStat(a, b)

	// most central possible statistic: both tails meet, p is exactly 1.
	if uMin == float64(na*nb)/2 {
		return 1
	}

	if na == 1 || nb == 1 {
		other := na
		if na == 1 {
			other = nb
		}
		p := 2 * (math.Floor(uMin) + 1) / (float64(other) + 1)
		if p > 1 {
			p = 1
		}
		return p
	}

	n := float64(na + nb)
	if na >= 8 || nb >= 8 {
		varU := float64(na) * float64(nb) * ((n*n*n - n) - ties) / (12 * n * (n - 1))
		z := (uMin - float64(na)*float64(nb)/2) / math.Sqrt(2*varU)
		p := math.Erfc(-z / math.Sqrt2)
		if p > 1 {
			p = 1
		}
		return p
	}

	p := 2 * mannWhitneyExactCDF(uMin, na, nb)
	if p > 1 {
		p = 1
	}
	return p
}

// mannWhitneyExactCDF evaluates P(U ≤ u) under the null via the
// Mann-Whitney 1947 recurrence on exact arrangement counts:
// c(u,n1,n2) = c(u-n2,n1-1,n2) + c(u,n1,n2-1), intended for use only
// when both sample sizes are small (< 8, enforced by the caller).
func mannWhitneyExactCDF(u float64, n1, n2 int) float64 {
	uu := int(math.Floor(u + 1e-9))

	type key struct{ u, n1, n2 int }
	memo := make(map[key]float64)
	var count func(u, n1, n2 int) float64
	count = func(u, n1, n2 int) float64 {
		if u < 0 {
			return 0
		}
		if n1 == 0 || n2 == 0 {
			if u == 0 {
				return 1
			}
			return 0
		}
		k := key{u, n1, n2}
		if v, ok := memo[k]; ok {
			return v
		}
		v := count(u-n2, n1-1, n2) + count(u, n1, n2-1)
		memo[k] = v
		return v
	}

	total := binomCoeff(n1+n2, n1)
	var cum float64
	for k := 0; k <= uu; k++ {
		cum += count(k, n1, n2)
	}
	return cum / total
}

func binomCoeff(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}
