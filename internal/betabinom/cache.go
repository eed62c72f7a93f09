// Package betabinom implements a monotone-growing cache of
// beta-binomial log-pmf terms, grounded on original_source/beta_binom.c.
// It is exposed as a standalone, owner-constructed type (not a package
// singleton) so a caller with its own per-record loop — the downstream
// HMM, out of scope here — can hold and grow one independently of the
// annotate pipeline.
package betabinom

import "math"

// Cache holds the incremental log-gamma-ratio tables used to evaluate
// beta-binomial log-pmf values for a fixed (p, rho) pair. It is not
// thread-safe; callers with concurrent access must serialise Update
// and LogPmf calls themselves.
type Cache struct {
	p, rho float64
	n1, n2 int

	// logGammaAlpha[n] = log( Γ(alpha+n) / Γ(alpha) / n! )
	logGammaAlpha []float64
	// logGammaBeta[n] = log( Γ(beta+n) / Γ(beta) / n! )
	logGammaBeta []float64
	// logGammaAlphaBeta[n] = log( Γ(alpha+beta+n) / Γ(alpha+beta) / n! )
	logGammaAlphaBeta []float64
}

// New returns a Cache with no parameters set yet; the first Update
// call establishes (p, rho) and begins filling the tables.
func New() *Cache {
	return &Cache{
		p:                 math.NaN(),
		rho:               math.NaN(),
		logGammaAlpha:     []float64{0},
		logGammaBeta:      []float64{0},
		logGammaAlphaBeta: []float64{0},
	}
}

// Update grows the cache so that logGammaAlpha and logGammaBeta are
// filled through index n1, and logGammaAlphaBeta through index n2,
// under parameters (p, rho). A change in (p, rho) from the previous
// call resets the high-water marks to zero but keeps the underlying
// storage, exactly as beta_binom_update does.
func (c *Cache) Update(p, rho float64, n1, n2 int) {
	if c.p != p || c.rho != rho {
		c.p = p
		c.rho = rho
		c.n1 = 0
		c.n2 = 0
	}

	c.grow(&c.logGammaAlpha, n1)
	c.grow(&c.logGammaBeta, n1)
	c.grow(&c.logGammaAlphaBeta, n2)

	if rho == 0 {
		logAlpha := math.Log(p)
		logBeta := math.Log(1 - p)
		for c.n1 < n1 {
			c.n1++
			n := c.n1
			logN := math.Log(float64(n))
			c.logGammaAlpha[n] = c.logGammaAlpha[n-1] + logAlpha - logN
			c.logGammaBeta[n] = c.logGammaBeta[n-1] + logBeta - logN
		}
		for c.n2 < n2 {
			c.n2++
			c.logGammaAlphaBeta[c.n2] = c.logGammaAlphaBeta[c.n2-1] - math.Log(float64(c.n2))
		}
		return
	}

	s := (1 - rho) / rho
	alpha := p * s
	beta := (1 - p) * s

	for c.n1 < n1 {
		c.n1++
		n := float64(c.n1)
		c.logGammaAlpha[c.n1] = c.logGammaAlpha[c.n1-1] + math.Log((alpha+n-1)/n)
		c.logGammaBeta[c.n1] = c.logGammaBeta[c.n1-1] + math.Log((beta+n-1)/n)
	}
	for c.n2 < n2 {
		c.n2++
		n := float64(c.n2)
		c.logGammaAlphaBeta[c.n2] = c.logGammaAlphaBeta[c.n2-1] + math.Log((alpha+beta+n-1)/n)
	}
}

func (c *Cache) grow(table *[]float64, n int) {
	if n+1 <= len(*table) {
		return
	}
	grown := make([]float64, n+1)
	copy(grown, *table)
	*table = grown
}

// LogPmf returns the beta-binomial log-pmf at (k successes, N trials)
// under the parameters most recently passed to Update, which must
// have been called with n1, n2 ≥ N before this is called.
func (c *Cache) LogPmf(k, n int) float64 {
	return c.logGammaAlpha[k] + c.logGammaBeta[n-k] - c.logGammaAlphaBeta[n]
}

func logBinomCoeff(n, k int) float64 {
	ln1, _ := math.Lgamma(float64(n + 1))
	lk1, _ := math.Lgamma(float64(k + 1))
	lnk1, _ := math.Lgamma(float64(n - k + 1))
	return ln1 - lk1 - lnk1
}
