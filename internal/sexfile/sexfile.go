// Package sexfile parses the plain-text sample-to-sex mapping used to
// enable sex-stratified counts and the Fisher exact test, grounded on
// fai/fai.go's fileio.EasyOpen/EasyNextRealLine line-oriented parsing.
package sexfile

import (
	"fmt"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Sex is a per-sample sex call: Unknown, Male, or Female. The integer
// values match spec.md §3's sex vector encoding (male=1, female=2,
// unknown=0).
type Sex byte

const (
	Unknown Sex = 0
	Male    Sex = 1
	Female  Sex = 2
)

// Parse reads a text file of "sample<TAB>{M,F,U}" lines (one per
// sample) into a name-keyed map. Samples never mentioned in the file
// are simply absent from the returned map; callers treat absence as
// Unknown.
func Parse(filename string) map[string]Sex {
	file := fileio.EasyOpen(filename)
	ans := make(map[string]Sex)

	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		cols := strings.Fields(line)
		if len(cols) != 2 {
			exception.PanicOnErr(fmt.Errorf("malformed sex file %s: expected 2 columns, got line %q", filename, line))
		}
		switch strings.ToUpper(cols[1]) {
		case "M", "MALE", "1":
			ans[cols[0]] = Male
		case "F", "FEMALE", "2":
			ans[cols[0]] = Female
		case "U", "UNKNOWN", "0":
			ans[cols[0]] = Unknown
		default:
			exception.PanicOnErr(fmt.Errorf("malformed sex file %s: unrecognized sex %q for sample %q", filename, cols[1], cols[0]))
		}
	}

	err := file.Close()
	exception.PanicOnErr(err)
	return ans
}

// Vector resolves a name-keyed sex map against the VCF header's
// sample-to-index map, returning a slice indexed the same way
// vcf.Header.Samples is: samples absent from bySample default to
// Unknown.
func Vector(sampleIndex map[string]int, bySample map[string]Sex) []Sex {
	ans := make([]Sex, len(sampleIndex))
	for name, idx := range sampleIndex {
		ans[idx] = bySample[name]
	}
	return ans
}
