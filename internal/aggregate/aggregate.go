// Package aggregate implements RecordAggregator: the per-record,
// per-sample reduction over genotype/AD/BAF/LRR/phase inputs that
// produces the site-level counts and phase-partitioned BAF vectors
// consumed by internal/battery. It is grounded directly on
// original_source/mochatools.c's process() sample loop.
package aggregate

import "math"

// phaseMissing is the sentinel used for both gt_phase and fmt_sign
// when the underlying value is absent or ambiguous. It is distinct
// from the meaningful {-1, 0, +1} range those fields otherwise take.
const phaseMissing int8 = -2

// Sample is one sample's per-record transient input, translated from
// a vcf.Sample by annotate/decoder.go. AD is carried in GT-position
// order (AD0 belongs to Allele0, AD1 to Allele1) before reordering;
// the aggregator reorders it into ref/alt order internally.
type Sample struct {
	Allele0, Allele1 int16 // -1 means missing
	Phased           bool
	HasAD            bool
	AD0, AD1         int32
	HasBAF           bool
	BAF              float64
	HasF             bool
	F                float64
}

func (s Sample) missing() bool {
	return s.Allele0 < 0 || s.Allele1 < 0
}

func (s Sample) homozygous() bool {
	return s.Allele0 == s.Allele1
}

// heterozygous matches the glossary definition: exactly one allele is
// the reference (0) and the other is not.
func (s Sample) heterozygous() bool {
	return s.Allele0 != s.Allele1 && (s.Allele0 == 0 || s.Allele1 == 0)
}

// SexClass is the per-sample sex used for ac_sex/ac_het_sex
// stratification: Male, Female, or Unknown (contributes nothing).
type SexClass byte

const (
	SexUnknown SexClass = 0
	SexMale    SexClass = 1
	SexFemale  SexClass = 2
)

// Counts holds the site-level aggregated counts produced by one call
// to Process, matching spec.md §3's "Aggregated counts per record".
type Counts struct {
	AcHet       int
	AcSex       [4]int // AA_M, AA_F, nonAA_M, nonAA_F
	AcHetSex    [2]int
	AcHetPhase  [2]int
	FmtBal      [2]int
	FmtBalPhase [2]int
	AdHet       [2]int64
}

// Aggregator owns the per-record scratch buffers (gt_phase, fmt_sign,
// and the two phase-partitioned BAF vectors) sized once to the sample
// count and reused across records, mirroring the recycled-slice idiom
// the teacher uses for read buffers in pair/pair.go and
// cmd/mcsCallVariants/mcsCallVariants.go's recycledReads.
type Aggregator struct {
	n          int
	gtPhase    []int8
	fmtSign    []int8
	bafByPhase [2][]float64
}

// New returns an Aggregator sized for n samples.
func New(n int) *Aggregator {
	return &Aggregator{
		n:       n,
		gtPhase: make([]int8, n),
		fmtSign: make([]int8, n),
	}
}

// Process runs the per-sample aggregation loop over samples (ascending
// sample-index order, per spec.md §4.3's ordering guarantee) and sex,
// returning the site-level counts. The phase-partitioned BAF vectors
// from this call can be read back via BAFByPhase until the next call
// to Process, which resets them in place.
func (a *Aggregator) Process(samples []Sample, sex []SexClass, fConfigured bool) Counts {
	a.bafByPhase[0] = a.bafByPhase[0][:0]
	a.bafByPhase[1] = a.bafByPhase[1][:0]

	var c Counts

	for i, s := range samples {
		if s.missing() {
			a.gtPhase[i] = phaseMissing
			a.fmtSign[i] = phaseMissing
			continue
		}

		a.gtPhase[i] = derivePhase(s.Allele0, s.Allele1, s.Phased)
		a.fmtSign[i] = deriveSign(s)

		if fConfigured && (a.fmtSign[i] == 1 || a.fmtSign[i] == -1) {
			c.FmtBal[(1-a.fmtSign[i])/2]++
		}

		var sexClass SexClass
		if i < len(sex) {
			sexClass = sex[i]
		}
		if s.homozygous() && sexClass != SexUnknown {
			row := 0
			if sexClass == SexFemale {
				row = 1
			}
			if s.Allele0 == 0 {
				c.AcSex[row]++
			} else {
				c.AcSex[row+2]++
			}
		}

		if !s.heterozygous() {
			continue
		}

		c.AcHet++
		if sexClass != SexUnknown {
			c.AcHetSex[sexClass-1]++
		}
		phase := a.gtPhase[i]
		if phase == 1 || phase == -1 {
			c.AcHetPhase[(1-int(phase))/2]++
		}
		if (phase == 1 || phase == -1) && (a.fmtSign[i] == 1 || a.fmtSign[i] == -1) {
			c.FmtBalPhase[(1-int(phase)*int(a.fmtSign[i]))/2]++
		}

		baf := math.NaN()
		if s.HasAD {
			ad0, ad1 := reorderAD(s)
			c.AdHet[0] += int64(ad0)
			c.AdHet[1] += int64(ad1)
			baf = (float64(ad1) + 0.5) / (float64(ad0) + float64(ad1) + 1)
		}
		if s.HasBAF {
			baf = s.BAF
		}

		if (phase == 1 || phase == -1) && !math.IsNaN(baf) {
			idx := (1 - int(phase)) / 2
			a.bafByPhase[idx] = append(a.bafByPhase[idx], baf)
		}
	}

	return c
}

// BAFByPhase returns the phase-partitioned BAF vectors from the most
// recent Process call: index 0 is the 0|1 ("paternal") bucket, index 1
// is the 1|0 ("maternal") bucket.
func (a *Aggregator) BAFByPhase() [2][]float64 {
	return a.bafByPhase
}

func derivePhase(a0, a1 int16, phased bool) int8 {
	if a0 == a1 {
		return phaseMissing
	}
	if !phased {
		return 0
	}
	switch {
	case a0 == 0:
		return 1
	case a1 == 0:
		return -1
	default:
		return phaseMissing
	}
}

func deriveSign(s Sample) int8 {
	if !s.HasF {
		return phaseMissing
	}
	switch {
	case s.F > 0:
		return 1
	case s.F < 0:
		return -1
	default:
		return 0
	}
}

// reorderAD returns (ref depth, alt depth) for a heterozygous sample,
// swapping the GT-position-ordered AD pair so ad0 always belongs to
// the reference allele.
func reorderAD(s Sample) (ref, alt int32) {
	if s.Allele0 == 0 {
		return s.AD0, s.AD1
	}
	return s.AD1, s.AD0
}
