package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/dasnellings/mochatools/annotate"
	"github.com/vertgenlab/gonomics/exception"
)

func annotateUsage(annotateFlags *flag.FlagSet) {
	fmt.Print(
		"annotate - compute per-site statistical annotations for genotype/AD/BAF/LRR VCF records\n\n" +
			"Usage:\n" +
			"  mochatools annotate [options] -i in.vcf -o out.vcf\n\n" +
			"Options:\n")
	annotateFlags.PrintDefaults()
}

func runAnnotate(args []string) {
	annotateFlags := flag.NewFlagSet("annotate", flag.ExitOnError)

	input := annotateFlags.String("i", "", "Input VCF file.")
	output := annotateFlags.String("o", "stdout", "Output VCF file.")
	balance := annotateFlags.String("balance", "", "Name of a per-sample signed FORMAT field to test for balance (e.g. a strand-of-origin indicator).")
	phase := annotateFlags.Bool("phase", false, "Enable phase-partitioned variants of all tests.")
	adHet := annotateFlags.Bool("ad-het", false, "Enable AD_Het/AD_Het_Test from the AD FORMAT field.")
	sex := annotateFlags.String("sex", "", "Sex file (sample<TAB>{M,F,U} per line). Enables sex-stratified counts and AC_Sex_Test.")
	fasta := annotateFlags.String("fasta", "", "Indexed reference FASTA. Enables GC/CpG annotation.")
	gcWindow := annotateFlags.Int("gc-window", 200, "Half-width of the GC/CpG reference window.")
	inferAlleles := annotateFlags.Bool("infer-baf-alleles", false, "Infer ALLELE_A/ALLELE_B from homozygous BAF medians.")
	corBafLrr := annotateFlags.Bool("cor-baf-lrr", false, "Compute Cor_BAF_LRR at the AA/AB/BB genotype classes (requires -infer-baf-alleles and the BAF and LRR FORMAT fields).")
	samplesSpec := annotateFlags.String("samples", "", "Comma-separated sample subset, prefix with ^ to exclude instead of include.")
	samplesFile := annotateFlags.String("samples-file", "", "File of sample names (one per line), same ^ exclusion convention as -samples.")
	forceSamples := annotateFlags.Bool("force-samples", false, "Ignore samples in -samples/-samples-file not present in the VCF instead of failing.")
	dropGenotypes := annotateFlags.Bool("drop-genotypes", false, "Strip per-sample FORMAT data from the output after computing statistics.")

	err := annotateFlags.Parse(args)
	exception.PanicOnErr(err)
	annotateFlags.Usage = func() { annotateUsage(annotateFlags) }

	if *input == "" {
		annotateFlags.Usage()
		errExit("\nERROR: must have an input VCF for -i")
	}

	cfg := annotate.Config{
		Input:         *input,
		Output:        *output,
		Window:        *gcWindow,
		Phase:         *phase,
		AdHet:         *adHet,
		InferAlleles:  *inferAlleles,
		CorBafLrr:     *corBafLrr,
		DropGenotypes: *dropGenotypes,
		Balance:       *balance,
		SexFile:       *sex,
		Fasta:         *fasta,
		SamplesSpec:   *samplesSpec,
		SamplesFile:   *samplesFile,
		ForceSamples:  *forceSamples,
	}

	if runErr := annotate.Run(cfg); runErr != nil {
		var cfgErr *annotate.ConfigError
		var schemaErr *annotate.SchemaError
		var refErr *annotate.ReferenceError
		switch {
		case errors.As(runErr, &cfgErr):
			errExit(cfgErr.Error())
		case errors.As(runErr, &schemaErr):
			errExit(schemaErr.Error())
		case errors.As(runErr, &refErr):
			errExit(refErr.Error())
		default:
			errExit(runErr.Error())
		}
	}
}
