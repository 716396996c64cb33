package interval

// PosType is the integer type used to represent genomic positions.  Text
// formats carry 1-based inclusive coordinates and that convention is kept
// throughout this package.
type PosType int64

// Entry is one genomic record as seen by the query engine: a chromosome name
// (opaque, compared only for equality) and a 1-based inclusive reference
// span.  Format-specific payloads stay on the implementing type; the engine
// never inspects them.
type Entry interface {
	Chrom() string
	Start() PosType
	End() PosType
}

// Source is a pull-style stream of entries, shaped like bufio.Scanner so
// record producers can read one line at a time and files larger than memory
// can be processed.  Scan returns false at end of stream or on error; Err
// distinguishes the two.
type Source interface {
	Scan() bool
	Entry() Entry
	Err() error
}

// Overlaps reports whether e intersects the closed interval [start, end] on
// chrom.  Touching at a boundary counts: a record ending exactly at start,
// or starting exactly at end, overlaps.  A degenerate region with
// start > end intersects nothing.
func Overlaps(e Entry, chrom string, start, end PosType) bool {
	if e.Chrom() != chrom {
		return false
	}
	return e.Start() <= end && e.End() >= start
}

// FindOverlapping drains src and returns, in stream order, the entries that
// overlap [start, end] on chrom.  The result is empty (never an error) when
// nothing matches; a non-nil error reflects a failure of the underlying
// stream, in which case no partial result is returned.
func FindOverlapping(src Source, chrom string, start, end PosType) ([]Entry, error) {
	var hits []Entry
	for src.Scan() {
		if e := src.Entry(); Overlaps(e, chrom, start, end) {
			hits = append(hits, e)
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// SliceSource adapts an in-memory slice of entries to the Source interface.
// It is single-use; create a new one to rescan.
type SliceSource struct {
	entries []Entry
	pos     int
}

// NewSliceSource returns a Source that yields the given entries in order.
func NewSliceSource(entries []Entry) *SliceSource {
	return &SliceSource{entries: entries}
}

// Scan implements Source.Scan.
func (s *SliceSource) Scan() bool {
	if s.pos >= len(s.entries) {
		return false
	}
	s.pos++
	return true
}

// Entry implements Source.Entry.  It is valid only after a successful Scan.
func (s *SliceSource) Entry() Entry { return s.entries[s.pos-1] }

// Err implements Source.Err.
func (s *SliceSource) Err() error { return nil }
