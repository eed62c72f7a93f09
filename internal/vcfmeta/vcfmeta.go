// Package vcfmeta plumbs annotation values onto gonomics' raw-string
// vcf.Vcf.Info field and builds the ##INFO header lines describing
// them. gonomics represents INFO as a single string rather than a
// typed map (see github.com/vertgenlab/gonomics/vcf and the
// cmd/mcsCallVariants/mcsCallVariants.go idiom
// `v.Info = strandedness.String(); v.Info += ";Strand=+"`), so every
// writer in this repo goes through here instead of re-deriving the
// append convention ad hoc.
package vcfmeta

import (
	"fmt"
	"strconv"
	"strings"
)

// AppendInt appends a single-valued integer INFO field.
func AppendInt(info string, key string, v int) string {
	return appendToken(info, key, strconv.Itoa(v))
}

// AppendInts appends a multi-valued integer INFO field as a
// comma-joined list.
func AppendInts(info string, key string, vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return appendToken(info, key, strings.Join(parts, ","))
}

// AppendFloat appends a single-valued float INFO field, formatted with
// %g so sentinels such as +Inf round-trip through the VCF text.
func AppendFloat(info string, key string, v float64) string {
	return appendToken(info, key, fmt.Sprintf("%g", v))
}

// AppendFloats appends a multi-valued float INFO field as a
// comma-joined list.
func AppendFloats(info string, key string, vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return appendToken(info, key, strings.Join(parts, ","))
}

func appendToken(info, key, value string) string {
	token := key + "=" + value
	if info == "" || info == "." {
		return token
	}
	return info + ";" + token
}

// InfoHeaderLine describes a single ##INFO=<...> header line to emit.
type InfoHeaderLine struct {
	ID          string
	Number      string // VCF Number field: "1", "2", "3", "4", "A", etc.
	Type        string // "Integer", "Float", "Flag"
	Description string
}

// HeaderLine renders the ##INFO=<...> text for one field.
func (h InfoHeaderLine) HeaderLine() string {
	return fmt.Sprintf("##INFO=<ID=%s,Number=%s,Type=%s,Description=\"%s\">", h.ID, h.Number, h.Type, h.Description)
}
