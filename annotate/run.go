// Package annotate implements the mochatools annotate subcommand:
// reading a VCF, computing site-level statistical annotations per
// record, and writing the annotated VCF back out. It is the
// orchestration layer grounded on burden/burden.go's top-level Run
// function and cmd/duplextools/burden.go's flag-to-call wiring.
package annotate

import (
	"log"

	"github.com/dasnellings/mochatools/internal/aggregate"
	"github.com/dasnellings/mochatools/internal/allele"
	"github.com/dasnellings/mochatools/internal/battery"
	"github.com/dasnellings/mochatools/internal/correlate"
	"github.com/dasnellings/mochatools/internal/numeric"
	"github.com/dasnellings/mochatools/internal/refscan"
	"github.com/dasnellings/mochatools/internal/samples"
	"github.com/dasnellings/mochatools/internal/sexfile"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
)

// Run executes one full annotate pass per cfg. It returns a
// *ConfigError or *SchemaError for problems detected before any
// record is read, and a *ReferenceError if a FASTA fetch fails
// mid-run.
func Run(cfg Config) error {
	if err := cfg.validateFlags(); err != nil {
		return err
	}

	records, header := vcf.GoReadToChan(cfg.Input)

	if err := cfg.validateSchema(header); err != nil {
		return err
	}

	subset, hasSubset, err := resolveSamples(cfg, header)
	if err != nil {
		return err
	}

	var sexVec []aggregate.SexClass
	sexEnabled := cfg.SexFile != ""
	if sexEnabled {
		bySample := sexfile.Parse(cfg.SexFile)
		raw := sexfile.Vector(header.Samples, bySample)
		sexVec = make([]aggregate.SexClass, len(raw))
		for i, s := range raw {
			sexVec[i] = aggregate.SexClass(s)
		}
	}

	var scanner *refscan.Scanner
	if cfg.Fasta != "" {
		scanner = refscan.NewScanner(cfg.Fasta, cfg.Window)
	}

	if hasSubset {
		if sexEnabled {
			sexVec = filterSexVec(subset, sexVec)
		}
		subset.Apply(&header)
	}
	nSamples := len(header.Samples)

	if cfg.DropGenotypes {
		dropGenotypeColumns(&header)
	}

	insertInfoLines(&header, annotationHeaderLines(cfg, sexEnabled))

	out := fileio.EasyCreate(cfg.Output)
	vcf.NewWriteHeader(out, header)

	agg := aggregate.New(nSamples)
	dec := newDecoder(nSamples)
	cache := numeric.NewBinomCache()
	batCfg := battery.Config{Sex: sexEnabled, Phase: cfg.Phase, Balance: cfg.Balance != "", AdHet: cfg.AdHet}

	var sampleBuf []vcf.Sample
	for v := range records {
		if hasSubset {
			sampleBuf = subset.FilterSamples(v.Samples, sampleBuf)
			v.Samples = sampleBuf
		}

		idx := lookupFields(v.Format, cfg.Balance)
		dec.decode(v, idx)

		counts := agg.Process(dec.samples[:len(v.Samples)], sexVec, cfg.Balance != "")
		bafByPhase := agg.BAFByPhase()
		batOut := battery.Evaluate(batCfg, counts, bafByPhase, cache)

		var refResult *refscan.Result
		if scanner != nil {
			res, err := scanner.Scan(v.Chr, v.Pos-1, len(v.Ref))
			if err != nil {
				return &ReferenceError{Chr: v.Chr, Pos: v.Pos, Err: err}
			}
			refResult = &res
		}

		var alleleA, alleleB int = -1, -1
		if cfg.InferAlleles {
			nAllele := 1 + len(v.Alt)
			alleleA, alleleB = allele.Infer(nAllele, dec.a0[:len(v.Samples)], dec.a1[:len(v.Samples)], dec.baf[:len(v.Samples)])
		}

		var corResult correlate.Result
		if cfg.CorBafLrr {
			corResult = correlate.Correlate(alleleA, alleleB, dec.a0[:len(v.Samples)], dec.a1[:len(v.Samples)], dec.baf[:len(v.Samples)], dec.lrr[:len(v.Samples)])
		}

		v.Info = buildInfo(v.Info, refResult, counts, batOut, cfg, alleleA, alleleB, corResult)

		if cfg.DropGenotypes {
			v.Samples = nil
			v.Format = nil
		}

		vcf.WriteVcf(out, v)
	}

	err = out.Close()
	exception.PanicOnErr(err)
	return nil
}

// filterSexVec restricts a full-header sex vector to the samples kept
// by subset, in Keep's order, mirroring samples.Subset.FilterSamples.
func filterSexVec(subset samples.Subset, sexVec []aggregate.SexClass) []aggregate.SexClass {
	out := make([]aggregate.SexClass, 0, len(subset.Keep))
	for _, idx := range subset.Keep {
		out = append(out, sexVec[idx])
	}
	return out
}

// resolveSamples builds the sample subset, if any, requested by
// cfg.SamplesSpec / cfg.SamplesFile.
func resolveSamples(cfg Config, header vcf.Header) (samples.Subset, bool, error) {
	var names []string
	var exclude bool
	switch {
	case cfg.SamplesSpec != "":
		names, exclude = samples.ParseList(cfg.SamplesSpec)
	case cfg.SamplesFile != "":
		names, exclude = samples.ParseFile(cfg.SamplesFile)
	default:
		return samples.Subset{}, false, nil
	}

	subset, err := samples.Resolve(names, exclude, cfg.ForceSamples, header)
	if err != nil {
		return samples.Subset{}, false, &ConfigError{Msg: err.Error()}
	}
	if len(subset.Keep) == len(header.Samples) {
		log.Printf("sample subset resolved to all %d samples in the header", len(subset.Keep))
	}
	return subset, true, nil
}
