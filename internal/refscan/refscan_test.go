package refscan

import (
	"math"
	"testing"

	"github.com/vertgenlab/gonomics/dna"
)

func TestScoreWindowWorkedExample(t *testing.T) {
	seq := dna.StringToBases("ACGTACGTACGT")
	r := ScoreWindow(seq)
	if math.Abs(r.GC-0.5) > 1e-9 {
		t.Errorf("expected GC=0.5, got %v", r.GC)
	}
	if math.Abs(r.CpG-0.5) > 1e-9 {
		t.Errorf("expected CpG=0.5, got %v", r.CpG)
	}
}

func TestScoreWindowBounds(t *testing.T) {
	for _, s := range []string{"AAAA", "CCCC", "GGGG", "TTTT", "ACGT", "NNNN"} {
		r := ScoreWindow(dna.StringToBases(s))
		if r.GC < 0 || r.GC > 1 {
			t.Errorf("GC out of bounds for %q: %v", s, r.GC)
		}
		if r.CpG < 0 || r.CpG > 1 {
			t.Errorf("CpG out of bounds for %q: %v", s, r.CpG)
		}
	}
}

func TestScoreWindowNoCpG(t *testing.T) {
	r := ScoreWindow(dna.StringToBases("ATATATAT"))
	if r.CpG != 0 {
		t.Errorf("expected CpG=0, got %v", r.CpG)
	}
	if math.Abs(r.GC-0) > 1e-9 {
		t.Errorf("expected GC=0, got %v", r.GC)
	}
}
