package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Region is a query region: a chromosome plus a 1-based inclusive
// [Start, End] position range.  The overlap engine does not validate
// Start <= End; a degenerate region simply matches nothing.
type Region struct {
	Chrom string
	Start PosType
	End   PosType
}

// MaxEnd is the End used when a region string carries no positional
// restriction.  It is only safe to compare against; adding any positive
// offset to it overflows PosType.
const MaxEnd = PosType(math.MaxInt64)

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning 1-based inclusive boundaries.  The interval [1, MaxEnd] is
// returned when there is no positional restriction.
func ParseRegionString(region string) (Region, error) {
	if len(region) == 0 {
		return Region{}, fmt.Errorf("interval.ParseRegionString: empty region string")
	}
	colonPos := strings.IndexByte(region, ':')
	if colonPos == -1 {
		return Region{Chrom: region, Start: 1, End: MaxEnd}, nil
	}
	if colonPos == 0 {
		return Region{}, fmt.Errorf("interval.ParseRegionString: empty contig ID")
	}
	result := Region{Chrom: region[:colonPos]}
	rangeStr := region[colonPos+1:]
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		pos, err := strconv.ParseInt(rangeStr, 10, 64)
		if err != nil {
			return Region{}, err
		}
		if pos <= 0 {
			return Region{}, fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr)
		}
		result.Start = PosType(pos)
		result.End = PosType(pos)
		return result, nil
	}
	start, err := strconv.ParseInt(rangeStr[:dashPos], 10, 64)
	if err != nil {
		return Region{}, err
	}
	if start <= 0 {
		return Region{}, fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr[:dashPos])
	}
	end, err := strconv.ParseInt(rangeStr[dashPos+1:], 10, 64)
	if err != nil {
		return Region{}, err
	}
	if end < start {
		return Region{}, fmt.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
	}
	result.Start = PosType(start)
	result.End = PosType(end)
	return result, nil
}
