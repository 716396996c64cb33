package sam

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/seqlab/bio/interval"
)

// minAlignmentFields is the number of mandatory tab-separated fields in a
// SAM alignment line (QNAME..QUAL).
const minAlignmentFields = 11

// Alignment is one SAM alignment line: the parsed fields used for region
// queries and chromosome stats, plus the raw field slice.  Positions are
// 1-based inclusive; End is derived from the CIGAR string when the
// alignment is parsed and never recomputed.  Alignments are immutable once
// constructed.
type Alignment struct {
	Name  string
	Ref   string
	Pos   interval.PosType
	MapQ  byte
	Cigar string
	// Fields holds the raw tab-separated fields of the line, including any
	// optional tags past the 11 mandatory columns.
	Fields []string

	end interval.PosType
}

// Chrom implements interval.Entry.
func (a *Alignment) Chrom() string { return a.Ref }

// Start implements interval.Entry.
func (a *Alignment) Start() interval.PosType { return a.Pos }

// End implements interval.Entry.  For a "*" CIGAR it equals Pos.
func (a *Alignment) End() interval.PosType { return a.end }

// ParseAlignment parses one alignment line.  It fails when the line has
// fewer than the 11 mandatory fields, when POS or MAPQ is not an integer in
// range, or with a *MalformedCigarError when the CIGAR string cannot be
// tokenized.
func ParseAlignment(line string) (*Alignment, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minAlignmentFields {
		return nil, errors.Errorf("sam: alignment line has %d fields, want >= %d", len(fields), minAlignmentFields)
	}
	pos, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "sam: bad POS field %q", fields[3])
	}
	mapq, err := strconv.ParseUint(fields[4], 10, 8)
	if err != nil {
		return nil, errors.Wrapf(err, "sam: bad MAPQ field %q", fields[4])
	}
	a := &Alignment{
		Name:   fields[0],
		Ref:    fields[2],
		Pos:    interval.PosType(pos),
		MapQ:   byte(mapq),
		Cigar:  fields[5],
		Fields: fields,
	}
	if a.end, err = CigarEnd(a.Pos, a.Cigar); err != nil {
		return nil, err
	}
	return a, nil
}

// HeaderGroup is one SAM header record type (@HD, @SQ, @RG, @PG, @CO, ...)
// with its lines in file order.
type HeaderGroup struct {
	Tag   string
	Lines []string
}

// Header collects SAM header lines grouped by record type, preserving the
// order in which record types first appear.
type Header struct {
	groups map[string]int
	order  []HeaderGroup
}

// Add appends one raw header line (including the leading "@") to its group.
func (h *Header) Add(line string) {
	tag := line
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		tag = line[:i]
	}
	if h.groups == nil {
		h.groups = map[string]int{}
	}
	idx, ok := h.groups[tag]
	if !ok {
		idx = len(h.order)
		h.groups[tag] = idx
		h.order = append(h.order, HeaderGroup{Tag: tag})
	}
	h.order[idx].Lines = append(h.order[idx].Lines, line)
}

// Groups returns the header groups in first-seen order.
func (h *Header) Groups() []HeaderGroup { return h.order }

// Lines returns the lines of one record type, or nil if absent.
func (h *Header) Lines(tag string) []string {
	if h.groups == nil {
		return nil
	}
	idx, ok := h.groups[tag]
	if !ok {
		return nil
	}
	return h.order[idx].Lines
}
