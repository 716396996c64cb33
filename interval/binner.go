package interval

import (
	"fmt"
	"math"
)

// WholeChromosome is a bin size that places every record on a chromosome in
// the single window starting at 0, reducing fixed-window binning to its
// degenerate per-chromosome case.
const WholeChromosome = PosType(math.MaxInt64)

// InvalidBinSizeError is returned by NewBinner for a non-positive bin size.
type InvalidBinSizeError struct {
	BinSize PosType
}

func (e *InvalidBinSizeError) Error() string {
	return fmt.Sprintf("interval: invalid bin size %d (must be a positive integer)", e.BinSize)
}

// Bin aggregates the records whose start position falls in the fixed window
// [RegionStart, RegionStart+binSize) on Chrom.
type Bin struct {
	Chrom       string
	RegionStart PosType
	// TotalDepth is the sum of the per-record depth annotation (e.g. the VCF
	// INFO DP value); records without one contribute 0.
	TotalDepth int64
	// Count is the number of records in the window.
	Count int64
}

// ChromSummary is the whole-chromosome degenerate bin: record count plus the
// running min/max of the record start positions seen on one chromosome.
type ChromSummary struct {
	Chrom  string
	Count  int64
	MinPos PosType
	MaxPos PosType
}

type binKey struct {
	chrom       string
	regionStart PosType
}

// Binner buckets genomic records into fixed-size windows per chromosome and
// accumulates depth and count per window, plus a per-chromosome position
// summary.  Bins and Chroms report results in first-seen order; callers
// wanting a sorted presentation sort the returned slices themselves.
//
// A Binner is not safe for concurrent use; each aggregation run owns its own
// Binner.
type Binner struct {
	binSize  PosType
	bins     map[binKey]*Bin
	binOrder []binKey
	chroms   map[string]*ChromSummary
	chrOrder []string
}

// NewBinner returns a Binner with the given window size.  It fails with
// *InvalidBinSizeError when binSize <= 0.
func NewBinner(binSize PosType) (*Binner, error) {
	if binSize <= 0 {
		return nil, &InvalidBinSizeError{BinSize: binSize}
	}
	return &Binner{
		binSize: binSize,
		bins:    map[binKey]*Bin{},
		chroms:  map[string]*ChromSummary{},
	}, nil
}

// Add records one entry start position with its depth annotation.  The
// window is floor(pos/binSize)*binSize.
func (b *Binner) Add(chrom string, pos PosType, depth int64) {
	key := binKey{chrom: chrom, regionStart: (pos / b.binSize) * b.binSize}
	bin := b.bins[key]
	if bin == nil {
		bin = &Bin{Chrom: key.chrom, RegionStart: key.regionStart}
		b.bins[key] = bin
		b.binOrder = append(b.binOrder, key)
	}
	bin.TotalDepth += depth
	bin.Count++

	cs := b.chroms[chrom]
	if cs == nil {
		cs = &ChromSummary{Chrom: chrom, MinPos: pos, MaxPos: pos}
		b.chroms[chrom] = cs
		b.chrOrder = append(b.chrOrder, chrom)
	}
	cs.Count++
	if pos < cs.MinPos {
		cs.MinPos = pos
	}
	if pos > cs.MaxPos {
		cs.MaxPos = pos
	}
}

// AddEntry records e.Start() with the given depth.
func (b *Binner) AddEntry(e Entry, depth int64) {
	b.Add(e.Chrom(), e.Start(), depth)
}

// Bins returns the populated windows in first-seen order.  The returned
// structs are copies; mutating them does not affect the Binner.
func (b *Binner) Bins() []Bin {
	out := make([]Bin, 0, len(b.binOrder))
	for _, key := range b.binOrder {
		out = append(out, *b.bins[key])
	}
	return out
}

// Chroms returns the per-chromosome summaries in first-seen order.
func (b *Binner) Chroms() []ChromSummary {
	out := make([]ChromSummary, 0, len(b.chrOrder))
	for _, chrom := range b.chrOrder {
		out = append(out, *b.chroms[chrom])
	}
	return out
}
