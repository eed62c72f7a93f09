package samples

import (
	"testing"

	"github.com/vertgenlab/gonomics/vcf"
)

func testHeader() vcf.Header {
	return vcf.Header{
		Samples: map[string]int{"a": 0, "b": 1, "c": 2},
		Text:    []string{"##fileformat=VCFv4.2", "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\ta\tb\tc"},
	}
}

func TestParseListInclude(t *testing.T) {
	names, exclude := ParseList("a,b")
	if exclude {
		t.Errorf("expected include mode")
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestParseListExclude(t *testing.T) {
	names, exclude := ParseList("^a,b")
	if !exclude {
		t.Errorf("expected exclude mode")
	}
	if len(names) != 2 || names[0] != "a" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestResolveInclude(t *testing.T) {
	sub, err := Resolve([]string{"a", "c"}, false, false, testHeader())
	if err != nil {
		t.Fatal(err)
	}
	if len(sub.Keep) != 2 || sub.Keep[0] != 0 || sub.Keep[1] != 2 {
		t.Errorf("unexpected keep set: %v", sub.Keep)
	}
}

func TestResolveExclude(t *testing.T) {
	sub, err := Resolve([]string{"b"}, true, false, testHeader())
	if err != nil {
		t.Fatal(err)
	}
	if len(sub.Keep) != 2 || sub.Keep[0] != 0 || sub.Keep[1] != 2 {
		t.Errorf("unexpected keep set: %v", sub.Keep)
	}
}

func TestResolveUnknownSampleFails(t *testing.T) {
	_, err := Resolve([]string{"z"}, false, false, testHeader())
	if err == nil {
		t.Errorf("expected error for unknown sample without force")
	}
}

func TestResolveUnknownSampleForced(t *testing.T) {
	sub, err := Resolve([]string{"a", "z"}, false, true, testHeader())
	if err != nil {
		t.Fatal(err)
	}
	if len(sub.Keep) != 1 || sub.Keep[0] != 0 {
		t.Errorf("unexpected keep set: %v", sub.Keep)
	}
}

func TestApplyAndFilterSamples(t *testing.T) {
	header := testHeader()
	sub, err := Resolve([]string{"a", "c"}, false, false, header)
	if err != nil {
		t.Fatal(err)
	}
	sub.Apply(&header)
	if len(header.Samples) != 2 || header.Samples["a"] != 0 || header.Samples["c"] != 1 {
		t.Errorf("unexpected filtered header samples: %v", header.Samples)
	}

	all := []vcf.Sample{
		{Alleles: []int16{0, 0}},
		{Alleles: []int16{0, 1}},
		{Alleles: []int16{1, 1}},
	}
	filtered := sub.FilterSamples(all, nil)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered samples, got %d", len(filtered))
	}
	if filtered[0].Alleles[0] != 0 || filtered[1].Alleles[0] != 1 {
		t.Errorf("unexpected filtered samples: %v", filtered)
	}
}
