// Package refscan computes GC and CpG content from a window of
// reference sequence around a variant, generalizing the
// fasta.Seeker/fasta.SeekByName window-fetch idiom from
// context/context.go and burden/burden.go's trinucleotide-context
// scanning to the site-level GC/CpG fractions spec.md §4.7 requires.
package refscan

import (
	"fmt"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"github.com/vertgenlab/gonomics/numbers"
)

// Scanner fetches and scores a reference window around a record.
type Scanner struct {
	ref    *fasta.Seeker
	window int
}

// NewScanner opens a FASTA index for random access and returns a
// Scanner that will fetch windows of half-width window around each
// queried position.
func NewScanner(fastaFile string, window int) *Scanner {
	return &Scanner{ref: fasta.NewSeeker(fastaFile, ""), window: window}
}

// Result is the per-record GC/CpG content, in [0,1].
type Result struct {
	GC  float64
	CpG float64
}

// Scan fetches [pos-W, pos+refLen-1+W] (0-based, both ends included) on chr,
// upper-cases it, and returns the GC and CpG fractions of the window.
// A fetch failure is a ReferenceError, fatal for this record per
// spec.md §7.
func (s *Scanner) Scan(chr string, pos, refLen int) (Result, error) {
	start := numbers.Max(0, pos-s.window)
	end := pos + refLen - 1 + s.window + 1

	seq, err := fasta.SeekByName(s.ref, chr, start, end)
	if err != nil {
		return Result{}, fmt.Errorf("reference fetch failed for %s:%d-%d: %w", chr, start, end, err)
	}
	dna.AllToUpper(seq)
	return ScoreWindow(seq), nil
}

// ScoreWindow counts A/T, C/G, and CpG dinucleotides (each CG
// contributing 2 to the CpG count) in an already-upper-cased window
// and returns the resulting GC and CpG fractions.
func ScoreWindow(seq []dna.Base) Result {
	var at, cg, cpg int
	for i, b := range seq {
		switch b {
		case dna.A, dna.T:
			at++
		case dna.C:
			cg++
			if i+1 < len(seq) && seq[i+1] == dna.G {
				cpg += 2
			}
		case dna.G:
			cg++
		}
	}

	ans := Result{}
	if at+cg > 0 {
		ans.GC = float64(cg) / float64(at+cg)
	}
	if len(seq) > 0 {
		ans.CpG = float64(cpg) / float64(len(seq))
	}
	return ans
}
