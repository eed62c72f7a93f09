// Package samples resolves the -samples/-samples-file subset surface
// against a VCF header and filters both vcf.Header.Samples and each
// record's vcf.Vcf.Samples together in a single pass. The original
// plugin kept two header structures in sync for this ("ugly
// workaround" in original_source/mochatools.c's init()); gonomics
// exposes vcf.Header.Samples and vcf.Vcf.Samples directly, so there is
// nothing to keep in sync beyond this one Subset value.
package samples

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
)

// ParseList parses a comma-separated sample list, with an optional
// leading '^' meaning "exclude these instead of including them".
func ParseList(spec string) (names []string, exclude bool) {
	if strings.HasPrefix(spec, "^") {
		return strings.Split(spec[1:], ","), true
	}
	return strings.Split(spec, ","), false
}

// ParseFile parses a newline-delimited file of sample names, with the
// same leading '^' exclusion convention read off the first line.
func ParseFile(filename string) (names []string, exclude bool) {
	file := fileio.EasyOpen(filename)
	first := true
	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		if first {
			first = false
			if strings.HasPrefix(line, "^") {
				exclude = true
				line = line[1:]
			}
		}
		if line != "" {
			names = append(names, line)
		}
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return names, exclude
}

// Subset is the resolved sample subset: Keep holds the original
// header.Samples indices to retain, in ascending order.
type Subset struct {
	Keep []int
}

// Resolve builds a Subset from a requested name list against the VCF
// header's sample set. When force is false, any requested name that
// is not present in the header is a hard ConfigError-class failure;
// when force is true, unknown names are dropped with a warning
// (mirroring --force-samples in the original plugin).
func Resolve(names []string, exclude, force bool, header vcf.Header) (Subset, error) {
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		requested[n] = true
	}

	var unknown []string
	for n := range requested {
		if _, ok := header.Samples[n]; !ok {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		if !force {
			return Subset{}, fmt.Errorf("unknown sample(s) %s: not present in VCF header (use -force-samples to ignore)", strings.Join(unknown, ","))
		}
		log.Printf("WARNING: ignoring unknown sample(s) in subset: %s", strings.Join(unknown, ","))
		for _, n := range unknown {
			delete(requested, n)
		}
	}

	var keep []int
	for name, idx := range header.Samples {
		in := requested[name]
		if exclude {
			in = !in
		}
		if in {
			keep = append(keep, idx)
		}
	}
	sort.Ints(keep)
	return Subset{Keep: keep}, nil
}

// Apply rewrites header in place to contain only the kept samples (in
// their original relative order). FilterSamples subsets a record's
// per-sample slice the same way.
func (s Subset) Apply(header *vcf.Header) {
	names := make([]string, len(header.Samples))
	for name, idx := range header.Samples {
		names[idx] = name
	}

	newSamples := make(map[string]int, len(s.Keep))
	for newIdx, oldIdx := range s.Keep {
		newSamples[names[oldIdx]] = newIdx
	}
	header.Samples = newSamples

	if len(header.Text) > 0 {
		last := header.Text[len(header.Text)-1]
		if strings.HasPrefix(last, "#CHROM") {
			cols := strings.Split(last, "\t")
			fixed := cols[:9] // #CHROM POS ID REF ALT QUAL FILTER INFO FORMAT
			kept := make([]string, 0, len(s.Keep))
			for _, oldIdx := range s.Keep {
				kept = append(kept, names[oldIdx])
			}
			header.Text[len(header.Text)-1] = strings.Join(append(fixed, kept...), "\t")
		}
	}
}

// FilterSamples returns v.Samples restricted to s.Keep, in Keep's
// order. The returned slice reuses the caller-provided buffer when it
// is large enough, matching the scratch-buffer-reuse idiom used
// throughout the aggregator.
func (s Subset) FilterSamples(all []vcf.Sample, buf []vcf.Sample) []vcf.Sample {
	buf = buf[:0]
	for _, idx := range s.Keep {
		buf = append(buf, all[idx])
	}
	return buf
}
