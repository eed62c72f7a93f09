// Package allele implements AlleleInference: deciding which of the
// observed alleles at a site is conventionally "A" (the one carried
// at low BAF by homozygotes) versus "B" (carried at high BAF),
// grounded on original_source/mochatools.c's infer_baf_alleles block.
package allele

import (
	"log"
	"math"

	"github.com/dasnellings/mochatools/internal/numeric"
)

// class is which side of 0.5 a homozygous class's median BAF falls on.
type class int

const (
	classUnknown class = 0
	classA       class = 1
	classB       class = 2
)

// Infer decides ALLELE_A and ALLELE_B for a site with nAllele distinct
// alleles (1, 2, or 3), given each sample's two genotype indices and
// BAF value (NaN for missing). nAllele=1 is trivially undecidable.
// Otherwise the two candidate alleles are (0,1) for nAllele=2 and
// (1,2) for nAllele=3, per spec.md §4.5.
func Infer(nAllele int, a0, a1 []int16, baf []float64) (alleleA, alleleB int) {
	if nAllele == 1 {
		return -1, -1
	}

	var cand0, cand1 int16
	switch nAllele {
	case 2:
		cand0, cand1 = 0, 1
	case 3:
		cand0, cand1 = 1, 2
	default:
		return -1, -1
	}

	med0 := homozygousMedianBAF(cand0, a0, a1, baf)
	med1 := homozygousMedianBAF(cand1, a0, a1, baf)
	c0 := classify(med0)
	c1 := classify(med1)

	switch {
	case c0 == classA && c1 == classB:
		return int(cand0), int(cand1)
	case c0 == classB && c1 == classA:
		return int(cand1), int(cand0)
	case c0 == classA && c1 == classUnknown:
		return int(cand0), int(cand1)
	case c0 == classB && c1 == classUnknown:
		return int(cand1), int(cand0)
	case c0 == classUnknown && c1 == classA:
		return int(cand1), int(cand0)
	case c0 == classUnknown && c1 == classB:
		return int(cand0), int(cand1)
	case c0 == classUnknown && c1 == classUnknown:
		return -1, -1
	default:
		// c0 == c1 and neither is unknown: both homozygous classes
		// point at the same allele letter, which is undecidable.
		log.Printf("allele inference: homozygous classes for alleles %d and %d both resolved to the same side of BAF=0.5 (medians %v, %v); marking undetermined", cand0, cand1, med0, med1)
		return -1, -1
	}
}

func classify(median float64) class {
	if math.IsNaN(median) || median == 0.5 {
		return classUnknown
	}
	if median < 0.5 {
		return classA
	}
	return classB
}

func homozygousMedianBAF(candidate int16, a0, a1 []int16, baf []float64) float64 {
	var vals []float64
	for i := range a0 {
		if a0[i] == candidate && a1[i] == candidate && !math.IsNaN(baf[i]) {
			vals = append(vals, baf[i])
		}
	}
	if len(vals) == 0 {
		return math.NaN()
	}
	return numeric.Median(vals)
}
