package sam

import (
	"fmt"

	"github.com/seqlab/bio/interval"
)

// cigarConsumesRef records, per CIGAR operation code, whether the operation
// advances the reference coordinate.  M/D/N/=/X consume reference; I/S/H/P
// consume only the query (or nothing) and must be parsed but contribute no
// reference span.
var cigarConsumesRef = map[byte]bool{
	'M': true,
	'I': false,
	'D': true,
	'N': true,
	'S': false,
	'H': false,
	'P': false,
	'=': true,
	'X': true,
}

// MalformedCigarError reports a CIGAR string that cannot be tokenized into
// (length, operation) pairs.  Pos is the byte offset of the offending
// character, or len(Cigar) for a truncated trailing token.
type MalformedCigarError struct {
	Cigar  string
	Pos    int
	Reason string
}

func (e *MalformedCigarError) Error() string {
	return fmt.Sprintf("sam: malformed CIGAR %q at offset %d: %s", e.Cigar, e.Pos, e.Reason)
}

// CigarEnd computes the 1-based inclusive reference end position of an
// alignment starting at start with the given CIGAR string.  A CIGAR of "*"
// (unmapped / unknown alignment) yields start unchanged.
//
// The scan accumulates digits into a pending length and resolves it at each
// operation code; only reference-consuming operations extend the span.  A
// stray operation code with no preceding length, an unknown operation
// letter, or trailing digits without an operation code fail with
// *MalformedCigarError.  (The last case is silently truncated by some tools;
// here it is reported.)
func CigarEnd(start interval.PosType, cigar string) (interval.PosType, error) {
	if cigar == "*" {
		return start, nil
	}
	if cigar == "" {
		return 0, &MalformedCigarError{Cigar: cigar, Pos: 0, Reason: "empty string"}
	}
	var consumed interval.PosType
	var pending interval.PosType
	haveDigits := false
	for i := 0; i < len(cigar); i++ {
		c := cigar[i]
		if c >= '0' && c <= '9' {
			pending = pending*10 + interval.PosType(c-'0')
			haveDigits = true
			continue
		}
		if !haveDigits {
			return 0, &MalformedCigarError{Cigar: cigar, Pos: i, Reason: fmt.Sprintf("operation %q has no length", c)}
		}
		consumesRef, ok := cigarConsumesRef[c]
		if !ok {
			return 0, &MalformedCigarError{Cigar: cigar, Pos: i, Reason: fmt.Sprintf("unknown operation %q", c)}
		}
		if consumesRef {
			consumed += pending
		}
		pending = 0
		haveDigits = false
	}
	if haveDigits {
		return 0, &MalformedCigarError{Cigar: cigar, Pos: len(cigar), Reason: "trailing length with no operation"}
	}
	if consumed == 0 {
		// Only non-reference-consuming operations (e.g. pure soft clips):
		// treat like "*" so end never precedes start.
		return start, nil
	}
	return start + consumed - 1, nil
}
