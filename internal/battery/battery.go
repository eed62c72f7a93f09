// Package battery implements TestBattery: it wires RecordAggregator's
// counts and phase-partitioned BAF vectors into the NumericKernels and
// produces the site-level annotation values, per spec.md §4.4.
package battery

import (
	"math"

	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/dasnellings/mochatools/internal/numeric"
)

// Config selects which prerequisite-gated annotations to emit, mirror
// of the CLI options enumerated in spec.md §6.
type Config struct {
	Sex     bool // sex vector present
	Phase   bool
	Balance bool // F format field configured
	AdHet   bool
}

// Output holds every possible TestBattery emission for one record.
// Has* flags mirror spec.md §4.4's "only when its prerequisites are
// met" gating; annotate/emit.go only writes the fields whose flag
// is set.
type Output struct {
	AcHet int

	HasAcHetSex bool
	AcHetSex    [2]int
	AcSexTest   float64

	HasAcHetPhase  bool
	AcHetPhase     [2]int
	AcHetPhaseTest float64

	HasBal   bool
	Bal      [2]int
	BalTest  float64

	HasBalPhase  bool
	BalPhase     [2]int
	BalPhaseTest float64

	HasAdHet   bool
	AdHet      [2]int64
	AdHetTest  float64

	HasBafPhaseTest bool
	BafPhaseTest    [4]float64
}

// Evaluate produces the TestBattery output for one record's
// aggregated counts and phase-partitioned BAF vectors. cache is the
// process-wide BinomCache; its growth persists across calls.
func Evaluate(cfg Config, counts aggregate.Counts, bafByPhase [2][]float64, cache *numeric.BinomCache) Output {
	var out Output
	out.AcHet = counts.AcHet

	if cfg.Sex {
		out.HasAcHetSex = true
		out.AcHetSex = counts.AcHetSex
		p := numeric.FisherTwoTailed(counts.AcSex[0], counts.AcSex[1], counts.AcSex[2], counts.AcSex[3])
		out.AcSexTest = negLog10OrSentinel(p)
	}

	if cfg.Phase {
		out.HasAcHetPhase = true
		out.AcHetPhase = counts.AcHetPhase
		p := numeric.BinomExact(counts.AcHetPhase[0], counts.AcHetPhase[0]+counts.AcHetPhase[1], cache)
		out.AcHetPhaseTest = negLog10OrSentinel(p)
	}

	if cfg.Balance {
		out.HasBal = true
		out.Bal = counts.FmtBal
		p := numeric.BinomExact(counts.FmtBal[0], counts.FmtBal[0]+counts.FmtBal[1], cache)
		out.BalTest = negLog10OrSentinel(p)
	}

	if cfg.Balance && cfg.Phase {
		out.HasBalPhase = true
		out.BalPhase = counts.FmtBalPhase
		p := numeric.BinomExact(counts.FmtBalPhase[0], counts.FmtBalPhase[0]+counts.FmtBalPhase[1], cache)
		out.BalPhaseTest = negLog10OrSentinel(p)
	}

	if cfg.AdHet {
		out.HasAdHet = true
		out.AdHet = counts.AdHet
		p := numeric.BinomExact(int(counts.AdHet[0]), int(counts.AdHet[0]+counts.AdHet[1]), cache)
		out.AdHetTest = negLog10OrSentinel(p)
	}

	if cfg.Phase && len(bafByPhase[0]) > 0 && len(bafByPhase[1]) > 0 {
		out.HasBafPhaseTest = true
		med0 := numeric.Median(bafByPhase[0])
		med1 := numeric.Median(bafByPhase[1])
		welch := numeric.WelchTTest(bafByPhase[0], bafByPhase[1])
		mwu := numeric.MannWhitneyP(bafByPhase[0], bafByPhase[1])
		out.BafPhaseTest = [4]float64{med0, med1, negLog10OrSentinel(welch), negLog10OrSentinel(mwu)}
	}

	return out
}

// negLog10OrSentinel returns -log10(p), except the +Inf "insufficient
// data" sentinel passes through verbatim rather than being
// transformed, per spec.md §4.4's edge-case note.
func negLog10OrSentinel(p float64) float64 {
	if math.IsInf(p, 1) {
		return p
	}
	return -math.Log10(p)
}
