package vcf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/seqlab/bio/interval"
)

// minVariantFields is the number of mandatory tab-separated columns in a VCF
// data line (CHROM..INFO).
const minVariantFields = 8

// Variant is one VCF data line.  Pos is 1-based; a variant is treated as a
// point record (no END/SVLEN handling), so its reference span is [Pos, Pos].
// Depth is the INFO DP value, 0 when absent or unparseable.  Variants are
// immutable once constructed.
type Variant struct {
	CHROM  string
	Pos    interval.PosType
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
	Info   string
	Depth  int64
}

// Chrom implements interval.Entry.
func (v *Variant) Chrom() string { return v.CHROM }

// Start implements interval.Entry.
func (v *Variant) Start() interval.PosType { return v.Pos }

// End implements interval.Entry; always equal to Pos.
func (v *Variant) End() interval.PosType { return v.Pos }

// ParseVariant parses one VCF data line.  It fails when the line has fewer
// than the 8 mandatory columns or POS is not an integer.
func ParseVariant(line string) (*Variant, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minVariantFields {
		return nil, errors.Errorf("vcf: data line has %d columns, want >= %d", len(fields), minVariantFields)
	}
	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "vcf: bad POS column %q", fields[1])
	}
	return &Variant{
		CHROM:  fields[0],
		Pos:    interval.PosType(pos),
		ID:     fields[2],
		Ref:    fields[3],
		Alt:    fields[4],
		Qual:   fields[5],
		Filter: fields[6],
		Info:   fields[7],
		Depth:  infoDepth(fields[7]),
	}, nil
}

// infoDepth extracts the DP value from a semicolon-delimited INFO column.
// Absent or non-numeric DP yields 0.
func infoDepth(info string) int64 {
	for _, kv := range strings.Split(info, ";") {
		if !strings.HasPrefix(kv, "DP=") {
			continue
		}
		dp, err := strconv.ParseInt(kv[len("DP="):], 10, 64)
		if err != nil {
			return 0
		}
		return dp
	}
	return 0
}
