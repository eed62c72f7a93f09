package annotate

import (
	"math"
	"testing"

	"github.com/vertgenlab/gonomics/vcf"
)

func TestLookupFields(t *testing.T) {
	format := []string{"GT", "AD", "BAF", "LRR", "SIGN"}
	idx := lookupFields(format, "SIGN")
	if idx.ad != 1 || idx.baf != 2 || idx.lrr != 3 || idx.f != 4 {
		t.Errorf("unexpected field indices: %+v", idx)
	}

	idxNoBalance := lookupFields(format, "")
	if idxNoBalance.f != -1 {
		t.Errorf("expected f index -1 when balance field unset, got %d", idxNoBalance.f)
	}
}

func TestDecodeHeterozygousWithADAndBAF(t *testing.T) {
	v := vcf.Vcf{
		Chr:    "chr1",
		Pos:    100,
		Ref:    "A",
		Alt:    []string{"T"},
		Format: []string{"GT", "AD", "BAF", "LRR"},
		Samples: []vcf.Sample{
			{Alleles: []int16{0, 1}, Phase: []bool{true}, FormatData: []string{"", "10,5", "0.6", "0.1"}},
			{Alleles: []int16{-1, -1}, Phase: []bool{false}, FormatData: []string{"", ".", ".", "."}},
		},
	}

	idx := lookupFields(v.Format, "")
	d := newDecoder(len(v.Samples))
	d.decode(v, idx)

	if d.a0[0] != 0 || d.a1[0] != 1 {
		t.Errorf("expected alleles (0,1), got (%d,%d)", d.a0[0], d.a1[0])
	}
	if !d.samples[0].HasAD || d.samples[0].AD0 != 10 || d.samples[0].AD1 != 5 {
		t.Errorf("expected AD0=10 AD1=5, got %+v", d.samples[0])
	}
	if !d.samples[0].HasBAF || d.samples[0].BAF != 0.6 {
		t.Errorf("expected BAF 0.6, got %+v", d.samples[0])
	}
	if math.Abs(d.lrr[0]-0.1) > 1e-9 {
		t.Errorf("expected LRR 0.1, got %v", d.lrr[0])
	}

	if d.a0[1] != -1 || d.a1[1] != -1 {
		t.Errorf("expected missing sample alleles -1,-1, got (%d,%d)", d.a0[1], d.a1[1])
	}
	if d.samples[1].HasAD || d.samples[1].HasBAF {
		t.Errorf("expected no AD/BAF parsed for missing sample, got %+v", d.samples[1])
	}
	if !math.IsNaN(d.baf[1]) || !math.IsNaN(d.lrr[1]) {
		t.Errorf("expected NaN BAF/LRR for missing sample, got %v %v", d.baf[1], d.lrr[1])
	}
}

func TestDecodeADIndexedByAllele(t *testing.T) {
	// three-allele site: AD lists depths for alleles 0,1,2. A sample
	// genotyped 2|0 should pick up ad[2] and ad[0], reported in
	// GT-position order (ad0 belongs to Allele0, ad1 to Allele1).
	v := vcf.Vcf{
		Chr:    "chr1",
		Pos:    100,
		Ref:    "A",
		Alt:    []string{"T", "C"},
		Format: []string{"GT", "AD"},
		Samples: []vcf.Sample{
			{Alleles: []int16{2, 0}, Phase: []bool{true}, FormatData: []string{"", "7,3,9"}},
		},
	}
	idx := lookupFields(v.Format, "")
	d := newDecoder(len(v.Samples))
	d.decode(v, idx)

	if d.samples[0].AD0 != 9 || d.samples[0].AD1 != 7 {
		t.Errorf("expected AD0=9 (allele 2's depth), AD1=7 (allele 0's depth), got %+v", d.samples[0])
	}
}

func TestParseFloatAndIntList(t *testing.T) {
	if _, ok := parseFloat("."); ok {
		t.Error("expected '.' to parse as missing")
	}
	if v, ok := parseFloat("0.25"); !ok || v != 0.25 {
		t.Errorf("expected 0.25, got %v %v", v, ok)
	}
	if _, ok := parseIntList(""); ok {
		t.Error("expected empty string to parse as missing")
	}
	if vs, ok := parseIntList("3,4"); !ok || vs[0] != 3 || vs[1] != 4 {
		t.Errorf("expected [3 4], got %v %v", vs, ok)
	}
}
