package vcf

import (
	"github.com/seqlab/bio/interval"
)

// DefaultBinSize is the region window used by RegionStats when the caller
// has no preference.
const DefaultBinSize = interval.PosType(1000)

// RegionStats drains r and aggregates variants into fixed windows of binSize
// positions per chromosome, accumulating variant count and total DP per
// window.  Windows are returned in first-seen order.
func RegionStats(r *Reader, binSize interval.PosType) ([]interval.Bin, error) {
	binner, err := interval.NewBinner(binSize)
	if err != nil {
		return nil, err
	}
	for r.Scan() {
		v := r.Variant()
		binner.Add(v.CHROM, v.Pos, v.Depth)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return binner.Bins(), nil
}

// Count drains r and returns the number of variant lines.
func Count(r *Reader) (int64, error) {
	var n int64
	for r.Scan() {
		n++
	}
	if err := r.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
