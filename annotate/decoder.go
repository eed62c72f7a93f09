package annotate

import (
	"math"
	"strconv"
	"strings"

	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/vertgenlab/gonomics/vcf"
)

// decoder owns the per-record scratch buffers that translate a
// vcf.Vcf's per-sample FORMAT data into the shapes internal/aggregate,
// internal/allele, and internal/correlate consume, sized once to the
// sample count and reused across records (the same buffer-reuse idiom
// aggregate.Aggregator itself uses).
type decoder struct {
	a0, a1  []int16
	baf     []float64
	lrr     []float64
	samples []aggregate.Sample
}

func newDecoder(n int) *decoder {
	return &decoder{
		a0:      make([]int16, n),
		a1:      make([]int16, n),
		baf:     make([]float64, n),
		lrr:     make([]float64, n),
		samples: make([]aggregate.Sample, n),
	}
}

// fieldIndices locates AD/BAF/LRR/F column positions in v.Format, -1
// when a field is not present on this particular record (FORMAT is
// nominally constant across a well-formed VCF but gonomics exposes it
// per-record, so it's looked up once per record rather than cached
// from the header).
type fieldIndices struct {
	ad, baf, lrr, f int
}

func lookupFields(format []string, balanceField string) fieldIndices {
	idx := fieldIndices{ad: -1, baf: -1, lrr: -1, f: -1}
	for i, name := range format {
		switch name {
		case "AD":
			idx.ad = i
		case "BAF":
			idx.baf = i
		case "LRR":
			idx.lrr = i
		case balanceField:
			if balanceField != "" {
				idx.f = i
			}
		}
	}
	return idx
}

// decode fills d's buffers from v's samples. n_allele is 1+len(v.Alt),
// used here to bound AD indexing.
func (d *decoder) decode(v vcf.Vcf, idx fieldIndices) {
	nAllele := 1 + len(v.Alt)
	for i, s := range v.Samples {
		d.baf[i] = math.NaN()
		d.lrr[i] = math.NaN()

		var a0, a1 int16 = -1, -1
		if len(s.Alleles) >= 2 {
			a0, a1 = s.Alleles[0], s.Alleles[1]
		}
		d.a0[i], d.a1[i] = a0, a1

		var phased bool
		if len(s.Phase) > 0 {
			phased = s.Phase[0]
		}

		agg := aggregate.Sample{Allele0: a0, Allele1: a1, Phased: phased}

		if idx.ad >= 0 && idx.ad < len(s.FormatData) && a0 >= 0 && a1 >= 0 {
			if ad, ok := parseIntList(s.FormatData[idx.ad]); ok && int(a0) < len(ad) && int(a1) < len(ad) && int(a0) < nAllele && int(a1) < nAllele {
				agg.HasAD = true
				agg.AD0 = ad[a0]
				agg.AD1 = ad[a1]
			}
		}

		if idx.baf >= 0 && idx.baf < len(s.FormatData) {
			if f, ok := parseFloat(s.FormatData[idx.baf]); ok {
				d.baf[i] = f
				agg.HasBAF = true
				agg.BAF = f
			}
		}

		if idx.lrr >= 0 && idx.lrr < len(s.FormatData) {
			if f, ok := parseFloat(s.FormatData[idx.lrr]); ok {
				d.lrr[i] = f
			}
		}

		if idx.f >= 0 && idx.f < len(s.FormatData) {
			if f, ok := parseFloat(s.FormatData[idx.f]); ok {
				agg.HasF = true
				agg.F = f
			}
		}

		d.samples[i] = agg
	}
}

func parseFloat(field string) (float64, bool) {
	if field == "" || field == "." {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseIntList(field string) ([]int32, bool) {
	if field == "" || field == "." {
		return nil, false
	}
	parts := strings.Split(field, ",")
	ans := make([]int32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, false
		}
		ans[i] = int32(v)
	}
	return ans, true
}
