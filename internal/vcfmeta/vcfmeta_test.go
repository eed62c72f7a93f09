package vcfmeta

import "testing"

func TestAppendIntFirstField(t *testing.T) {
	if got := AppendInt(".", "AC_Het", 5); got != "AC_Het=5" {
		t.Errorf("got %q", got)
	}
	if got := AppendInt("", "AC_Het", 5); got != "AC_Het=5" {
		t.Errorf("got %q", got)
	}
}

func TestAppendIntSubsequentField(t *testing.T) {
	got := AppendInt("AC_Het=5", "AD_Het", 3)
	if got != "AC_Het=5;AD_Het=3" {
		t.Errorf("got %q", got)
	}
}

func TestAppendFloatsMultivalued(t *testing.T) {
	got := AppendFloats(".", "Cor_BAF_LRR", []float64{0.1, -0.2, 0.3})
	if got != "Cor_BAF_LRR=0.1,-0.2,0.3" {
		t.Errorf("got %q", got)
	}
}

func TestInfoHeaderLine(t *testing.T) {
	h := InfoHeaderLine{ID: "GC", Number: "1", Type: "Float", Description: "GC fraction"}
	want := `##INFO=<ID=GC,Number=1,Type=Float,Description="GC fraction">`
	if got := h.HeaderLine(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
