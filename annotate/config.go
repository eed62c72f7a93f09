package annotate

import (
	"strings"

	"github.com/vertgenlab/gonomics/vcf"
)

// Config is the immutable run configuration for one annotate pass,
// the Go analogue of spec.md §3's "Run configuration".
type Config struct {
	Input  string
	Output string

	Window int // gc_window half-width, default 200

	Phase         bool
	AdHet         bool
	InferAlleles  bool
	CorBafLrr     bool
	DropGenotypes bool

	Balance string // FORMAT field name carrying a sign; empty disables Bal/Bal_Test
	SexFile string
	Fasta   string

	SamplesSpec  string // comma-separated list, optional leading '^' for exclusion
	SamplesFile  string // newline-delimited file, same '^' convention
	ForceSamples bool
}

// validateFlags checks option combinations that don't depend on the
// VCF header content.
func (c Config) validateFlags() error {
	if c.Input == "" {
		return &ConfigError{Msg: "input VCF (-i) is required"}
	}
	if c.Window <= 0 {
		return &ConfigError{Msg: "gc-window must be > 0"}
	}
	if c.SamplesSpec != "" && c.SamplesFile != "" {
		return &ConfigError{Msg: "-samples and -samples-file are mutually exclusive"}
	}
	if c.CorBafLrr && !c.InferAlleles {
		return &ConfigError{Msg: "-cor-baf-lrr requires -infer-baf-alleles to establish ALLELE_A/ALLELE_B"}
	}
	return nil
}

// validateSchema checks that every FORMAT field a requested annotation
// depends on is declared in the input header.
func (c Config) validateSchema(header vcf.Header) error {
	if c.AdHet && !headerHasFormat(header, "AD") {
		return &SchemaError{Field: "AD", Reason: "required by -ad-het"}
	}
	if c.InferAlleles && !headerHasFormat(header, "BAF") {
		return &SchemaError{Field: "BAF", Reason: "required by -infer-baf-alleles"}
	}
	if c.CorBafLrr {
		if !headerHasFormat(header, "BAF") {
			return &SchemaError{Field: "BAF", Reason: "required by -cor-baf-lrr"}
		}
		if !headerHasFormat(header, "LRR") {
			return &SchemaError{Field: "LRR", Reason: "required by -cor-baf-lrr"}
		}
	}
	if c.Balance != "" && !headerHasFormat(header, c.Balance) {
		return &SchemaError{Field: c.Balance, Reason: "required by -balance"}
	}
	return nil
}

func headerHasFormat(header vcf.Header, id string) bool {
	prefix := "##FORMAT=<ID=" + id + ","
	for _, line := range header.Text {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
