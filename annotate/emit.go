package annotate

import (
	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/dasnellings/mochatools/internal/battery"
	"github.com/dasnellings/mochatools/internal/correlate"
	"github.com/dasnellings/mochatools/internal/refscan"
	"github.com/dasnellings/mochatools/internal/vcfmeta"
)

// buildInfo appends every computed annotation onto info in the order
// listed by spec.md §6's output annotation table.
func buildInfo(info string, ref *refscan.Result, counts aggregate.Counts, out battery.Output, cfg Config, alleleA, alleleB int, cor correlate.Result) string {
	if ref != nil {
		info = vcfmeta.AppendFloat(info, "GC", ref.GC)
		info = vcfmeta.AppendFloat(info, "CpG", ref.CpG)
	}

	info = vcfmeta.AppendInt(info, "AC_Het", counts.AcHet)

	if out.HasAcHetSex {
		info = vcfmeta.AppendInts(info, "AC_Het_Sex", out.AcHetSex[:])
		info = vcfmeta.AppendFloat(info, "AC_Sex_Test", out.AcSexTest)
	}

	if out.HasAcHetPhase {
		info = vcfmeta.AppendInts(info, "AC_Het_Phase", out.AcHetPhase[:])
		info = vcfmeta.AppendFloat(info, "AC_Het_Phase_Test", out.AcHetPhaseTest)
	}

	if out.HasBal {
		info = vcfmeta.AppendInts(info, "Bal", out.Bal[:])
		info = vcfmeta.AppendFloat(info, "Bal_Test", out.BalTest)
	}

	if out.HasBalPhase {
		info = vcfmeta.AppendInts(info, "Bal_Phase", out.BalPhase[:])
		info = vcfmeta.AppendFloat(info, "Bal_Phase_Test", out.BalPhaseTest)
	}

	if out.HasAdHet {
		info = vcfmeta.AppendInts(info, "AD_Het", []int{int(out.AdHet[0]), int(out.AdHet[1])})
		info = vcfmeta.AppendFloat(info, "AD_Het_Test", out.AdHetTest)
	}

	if out.HasBafPhaseTest {
		info = vcfmeta.AppendFloats(info, "BAF_Phase_Test", out.BafPhaseTest[:])
	}

	if cfg.InferAlleles {
		info = vcfmeta.AppendInt(info, "ALLELE_A", alleleA)
		info = vcfmeta.AppendInt(info, "ALLELE_B", alleleB)
	}

	if cfg.CorBafLrr {
		info = vcfmeta.AppendFloats(info, "Cor_BAF_LRR", cor[:])
	}

	return info
}
