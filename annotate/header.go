package annotate

import (
	"strings"

	"github.com/dasnellings/mochatools/internal/vcfmeta"
	"github.com/vertgenlab/gonomics/vcf"
)

// annotationHeaderLines returns the ##INFO lines for every annotation
// this configuration can possibly emit. Per spec.md's supplemented
// features (SPEC_FULL.md §11), a line is only added when its
// prerequisites are met, mirroring the original plugin only declaring
// the INFO fields it can actually compute.
func annotationHeaderLines(cfg Config, sexEnabled bool) []string {
	var lines []vcfmeta.InfoHeaderLine

	if cfg.Fasta != "" {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "GC", Number: "1", Type: "Float", Description: "GC fraction of the reference window around the variant"},
			vcfmeta.InfoHeaderLine{ID: "CpG", Number: "1", Type: "Float", Description: "CpG dinucleotide fraction of the reference window around the variant"},
		)
	}

	lines = append(lines, vcfmeta.InfoHeaderLine{ID: "AC_Het", Number: "1", Type: "Integer", Description: "Number of heterozygous samples"})

	if sexEnabled {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "AC_Het_Sex", Number: "2", Type: "Integer", Description: "Heterozygous sample counts by sex (male, female)"},
			vcfmeta.InfoHeaderLine{ID: "AC_Sex_Test", Number: "1", Type: "Float", Description: "-log10(p) of Fisher's exact test on sex-stratified homozygous counts"},
		)
	}

	if cfg.Phase {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "AC_Het_Phase", Number: "2", Type: "Integer", Description: "Heterozygous sample counts by parental phase"},
			vcfmeta.InfoHeaderLine{ID: "AC_Het_Phase_Test", Number: "1", Type: "Float", Description: "-log10(p) of a binomial test on phase-partitioned heterozygous counts"},
			vcfmeta.InfoHeaderLine{ID: "BAF_Phase_Test", Number: "4", Type: "Float", Description: "Paternal median BAF, maternal median BAF, -log10(Welch p), -log10(Mann-Whitney p)"},
		)
	}

	if cfg.Balance != "" {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "Bal", Number: "2", Type: "Integer", Description: "Counts of positive/negative " + cfg.Balance + " sign"},
			vcfmeta.InfoHeaderLine{ID: "Bal_Test", Number: "1", Type: "Float", Description: "-log10(p) of a binomial test on " + cfg.Balance + " sign balance"},
		)
		if cfg.Phase {
			lines = append(lines,
				vcfmeta.InfoHeaderLine{ID: "Bal_Phase", Number: "2", Type: "Integer", Description: "Counts of " + cfg.Balance + " sign agreement with parental phase"},
				vcfmeta.InfoHeaderLine{ID: "Bal_Phase_Test", Number: "1", Type: "Float", Description: "-log10(p) of a binomial test on phase/" + cfg.Balance + " sign agreement"},
			)
		}
	}

	if cfg.AdHet {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "AD_Het", Number: "2", Type: "Integer", Description: "Summed reference/alternate allelic depths across heterozygous samples"},
			vcfmeta.InfoHeaderLine{ID: "AD_Het_Test", Number: "1", Type: "Float", Description: "-log10(p) of a binomial test on AD_Het"},
		)
	}

	if cfg.InferAlleles {
		lines = append(lines,
			vcfmeta.InfoHeaderLine{ID: "ALLELE_A", Number: "1", Type: "Integer", Description: "Inferred allele index of the low-BAF homozygous class"},
			vcfmeta.InfoHeaderLine{ID: "ALLELE_B", Number: "1", Type: "Integer", Description: "Inferred allele index of the high-BAF homozygous class"},
		)
	}

	if cfg.CorBafLrr {
		lines = append(lines, vcfmeta.InfoHeaderLine{ID: "Cor_BAF_LRR", Number: "3", Type: "Float", Description: "Pearson correlation of BAF and LRR at AA/AB/BB genotype classes"})
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.HeaderLine()
	}
	return out
}

// insertInfoLines inserts lines immediately before the #CHROM line,
// matching where mcsCallVariants.go::makeVcfHeader appends new ##INFO
// declarations: just ahead of the column header.
func insertInfoLines(header *vcf.Header, lines []string) {
	chromIdx := len(header.Text)
	for i, line := range header.Text {
		if strings.HasPrefix(line, "#CHROM") {
			chromIdx = i
			break
		}
	}
	newText := make([]string, 0, len(header.Text)+len(lines))
	newText = append(newText, header.Text[:chromIdx]...)
	newText = append(newText, lines...)
	newText = append(newText, header.Text[chromIdx:]...)
	header.Text = newText
}

// dropGenotypeColumns rewrites the #CHROM line to the 8 fixed columns
// only, matching the original plugin's -G / sites_only behavior.
func dropGenotypeColumns(header *vcf.Header) {
	header.Samples = map[string]int{}
	for i, line := range header.Text {
		if strings.HasPrefix(line, "#CHROM") {
			cols := strings.Split(line, "\t")
			if len(cols) > 8 {
				header.Text[i] = strings.Join(cols[:8], "\t")
			}
			break
		}
	}
}
