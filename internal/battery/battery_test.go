package battery

import (
	"math"
	"testing"

	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/dasnellings/mochatools/internal/numeric"
)

func TestEvaluateZeroDenominatorYieldsZeroAnnotation(t *testing.T) {
	cache := numeric.NewBinomCache()
	counts := aggregate.Counts{}
	out := Evaluate(Config{Phase: true, AdHet: true}, counts, [2][]float64{}, cache)
	if out.AcHetPhaseTest != 0 {
		t.Errorf("expected AcHetPhaseTest 0 for zero denominator, got %v", out.AcHetPhaseTest)
	}
	if out.AdHetTest != 0 {
		t.Errorf("expected AdHetTest 0 for zero denominator, got %v", out.AdHetTest)
	}
}

func TestEvaluateSexGatesAcSexTest(t *testing.T) {
	cache := numeric.NewBinomCache()
	counts := aggregate.Counts{AcSex: [4]int{8, 2, 2, 8}, AcHetSex: [2]int{5, 5}}
	out := Evaluate(Config{Sex: true}, counts, [2][]float64{}, cache)
	if !out.HasAcHetSex {
		t.Fatal("expected HasAcHetSex true")
	}
	if out.AcHetSex != [2]int{5, 5} {
		t.Errorf("expected AcHetSex passthrough, got %v", out.AcHetSex)
	}
	if out.AcSexTest <= 0 {
		t.Errorf("expected a skewed AcSex table to yield AcSexTest > 0, got %v", out.AcSexTest)
	}
	if out.HasAcHetPhase || out.HasBal || out.HasBalPhase || out.HasAdHet || out.HasBafPhaseTest {
		t.Errorf("expected only sex-gated fields set, got %+v", out)
	}
}

func TestEvaluateBafPhaseTestRequiresBothBucketsNonEmpty(t *testing.T) {
	cache := numeric.NewBinomCache()
	counts := aggregate.Counts{}
	out := Evaluate(Config{Phase: true}, counts, [2][]float64{{0.3, 0.4}, nil}, cache)
	if out.HasBafPhaseTest {
		t.Error("expected HasBafPhaseTest false when one phase bucket is empty")
	}
}

func TestEvaluateBafPhaseTestPopulatesAllFour(t *testing.T) {
	cache := numeric.NewBinomCache()
	counts := aggregate.Counts{}
	a := []float64{0.1, 0.15, 0.2}
	b := []float64{0.8, 0.85, 0.9}
	out := Evaluate(Config{Phase: true}, counts, [2][]float64{a, b}, cache)
	if !out.HasBafPhaseTest {
		t.Fatal("expected HasBafPhaseTest true")
	}
	if math.Abs(out.BafPhaseTest[0]-0.15) > 1e-9 {
		t.Errorf("expected median0 0.15, got %v", out.BafPhaseTest[0])
	}
	if math.Abs(out.BafPhaseTest[1]-0.85) > 1e-9 {
		t.Errorf("expected median1 0.85, got %v", out.BafPhaseTest[1])
	}
	if out.BafPhaseTest[2] <= 0 || out.BafPhaseTest[3] <= 0 {
		t.Errorf("expected positive -log10 test statistics for well-separated buckets, got %v", out.BafPhaseTest)
	}
}

func TestNegLog10OrSentinelPassesInfThrough(t *testing.T) {
	if got := negLog10OrSentinel(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf sentinel to pass through unchanged, got %v", got)
	}
	if got := negLog10OrSentinel(1.0); got != 0 {
		t.Errorf("expected -log10(1)=0, got %v", got)
	}
}
