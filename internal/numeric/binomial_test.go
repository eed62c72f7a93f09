package numeric

import (
	"math"
	"testing"
)

func TestBinomExactSymmetry(t *testing.T) {
	cache := NewBinomCache()
	for n := 1; n <= 40; n++ {
		for k := 0; k <= n; k++ {
			p1 := BinomExact(k, n, cache)
			p2 := BinomExact(n-k, n, cache)
			if math.Abs(p1-p2) > 1e-12 {
				t.Errorf("binom_exact(%d,%d)=%v != binom_exact(%d,%d)=%v", k, n, p1, n-k, n, p2)
			}
			if p1 < 0 || p1 > 1 {
				t.Errorf("binom_exact(%d,%d)=%v out of [0,1]", k, n, p1)
			}
		}
	}
}

func TestBinomExactEvenMidpoint(t *testing.T) {
	cache := NewBinomCache()
	if p := BinomExact(5, 10, cache); p != 1.0 {
		t.Errorf("expected binom_exact(5,10)=1.0, got %v", p)
	}
}

func TestBinomExactWorkedExample(t *testing.T) {
	cache := NewBinomCache()
	got := BinomExact(3, 10, cache)
	want := 0.34375
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("binom_exact(3,10): got %v, want %v", got, want)
	}
}

func TestBinomExactCacheMonotonic(t *testing.T) {
	cache := NewBinomCache()
	BinomExact(2, 20, cache)
	row := cache.rows[20]
	BinomExact(3, 20, cache)
	if &row[0] != &cache.rows[20][0] {
		t.Errorf("expected row for n=20 to be reused, not rebuilt")
	}
}

func TestBinomExactReleaseSentinel(t *testing.T) {
	cache := NewBinomCache()
	BinomExact(2, 20, cache)
	if len(cache.rows) == 0 {
		t.Fatalf("expected cache to have grown")
	}
	BinomExact(0, -1, cache)
	if len(cache.rows) != 0 {
		t.Errorf("expected release sentinel to clear cache")
	}
}

func TestBinomExactLargeNFallback(t *testing.T) {
	cache := NewBinomCache()
	p := BinomExact(500, 1100, cache)
	if p < 0 || p > 1 {
		t.Errorf("expected fallback p in [0,1], got %v", p)
	}
	pSym := BinomExact(600, 1100, cache)
	if math.Abs(p-pSym) > 1e-9 {
		t.Errorf("expected symmetry in large-n fallback, got %v vs %v", p, pSym)
	}
}
