package sam

import (
	"github.com/seqlab/bio/interval"
)

// Stats summarizes the alignment section of a SAM file: total alignment
// count plus per-chromosome count and min/max start position, in
// first-seen chromosome order.
type Stats struct {
	Alignments int64
	Chroms     []interval.ChromSummary
}

// ReadStats drains r and returns its alignment stats.  The header remains
// available on r afterwards.
func ReadStats(r *Reader) (*Stats, error) {
	binner, err := interval.NewBinner(interval.WholeChromosome)
	if err != nil {
		return nil, err
	}
	var n int64
	for r.Scan() {
		binner.AddEntry(r.Alignment(), 0)
		n++
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &Stats{Alignments: n, Chroms: binner.Chroms()}, nil
}
