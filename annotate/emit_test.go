package annotate

import (
	"strings"
	"testing"

	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/dasnellings/mochatools/internal/battery"
	"github.com/dasnellings/mochatools/internal/correlate"
	"github.com/dasnellings/mochatools/internal/refscan"
)

func TestBuildInfoOrderingAndGating(t *testing.T) {
	counts := aggregate.Counts{AcHet: 4}
	out := battery.Output{
		AcHet:       4,
		HasAcHetSex: true,
		AcHetSex:    [2]int{2, 2},
		AcSexTest:   1.5,
	}
	ref := &refscan.Result{GC: 0.5, CpG: 0.25}
	cfg := Config{}

	info := buildInfo(".", ref, counts, out, cfg, -1, -1, correlate.Result{})

	wantPrefix := "GC=0.5;CpG=0.25;AC_Het=4;AC_Het_Sex=2,2;AC_Sex_Test=1.5"
	if !strings.HasPrefix(info, wantPrefix) {
		t.Errorf("expected info to start with %q, got %q", wantPrefix, info)
	}
}

func TestBuildInfoOmitsUngatedFields(t *testing.T) {
	counts := aggregate.Counts{AcHet: 0}
	out := battery.Output{}
	info := buildInfo(".", nil, counts, out, Config{}, -1, -1, correlate.Result{})
	if info != "AC_Het=0" {
		t.Errorf("expected only AC_Het with nothing else enabled, got %q", info)
	}
}

func TestBuildInfoAppendsToExistingInfo(t *testing.T) {
	counts := aggregate.Counts{AcHet: 1}
	info := buildInfo("DB", nil, counts, battery.Output{}, Config{}, -1, -1, correlate.Result{})
	if info != "DB;AC_Het=1" {
		t.Errorf("expected existing INFO preserved, got %q", info)
	}
}
