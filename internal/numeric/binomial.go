package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BinomCache is the triangular table backing BinomExact: for each n
// seen, row(n) holds the cumulative binomial mass C(n,0..k)/2^n so
// repeated queries at the same n are O(1) after the first fill. It
// grows monotonically with the largest n requested and is not
// thread-safe; callers with concurrent access must serialise it
// themselves (see spec's "process-wide cache, single owner" note).
type BinomCache struct {
	rows map[int][]float64
}

// NewBinomCache returns an empty cache.
func NewBinomCache() *BinomCache {
	return &BinomCache{rows: make(map[int][]float64)}
}

// Release drops all cached rows. Mirrors the sentinel n<0 call in the
// original plugin that frees its static cache between runs.
func (c *BinomCache) Release() {
	c.rows = make(map[int][]float64)
}

// row returns, building and caching it if necessary, the cumulative
// sum table for n: row[k] = Σ_{j=0..k} C(n,j) / 2^n for k in [0, n/2].
func (c *BinomCache) row(n int) []float64 {
	if r, ok := c.rows[n]; ok {
		return r
	}
	half := n / 2
	r := make([]float64, half+1)
	term := math.Pow(2, -float64(n))
	cum := term
	r[0] = cum
	for j := 1; j <= half; j++ {
		term *= float64(n-j+1) / float64(j)
		cum += term
		r[j] = cum
	}
	c.rows[n] = r
	return r
}

// BinomExact returns the exact two-sided binomial tail probability for
// k successes out of n trials at p=1/2. For n > 1000 it defers to
// gonum's distuv.Binomial CDF, which is itself a regularised
// incomplete beta evaluation, rather than building an O(n) triangular
// row for a single query. n < 0 is a sentinel that releases cache.
func BinomExact(k, n int, cache *BinomCache) float64 {
	if n < 0 {
		cache.Release()
		return 0
	}
	if k < 0 || k > n {
		return math.Inf(1)
	}
	if n%2 == 0 && k == n/2 {
		return 1.0
	}
	kk := k
	if kk > n-kk {
		kk = n - kk
	}

	if n > 1000 {
		b := distuv.Binomial{N: float64(n), P: 0.5}
		p := 2 * b.CDF(float64(kk))
		if p > 1 {
			p = 1
		}
		return p
	}

	row := cache.row(n)
	p := 2 * row[kk]
	if p > 1 {
		p = 1
	}
	return p
}
