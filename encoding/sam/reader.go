package sam

import (
	"bufio"
	"io"

	"github.com/seqlab/bio/interval"
)

// ReaderOpts controls Reader behavior.
type ReaderOpts struct {
	// SkipInvalid drops alignment lines that fail to parse instead of
	// stopping the scan with an error.  This mirrors the lenient behavior of
	// ad-hoc SAM consumers; the default is to report the first bad line.
	SkipInvalid bool
}

// Reader scans a plain-text SAM stream one alignment at a time, so files
// larger than memory can be processed.  Header lines are accumulated as they
// are encountered and are complete once Scan has returned false, or as soon
// as the first alignment has been scanned.  Reader implements
// interval.Source.
type Reader struct {
	scanner *bufio.Scanner
	opts    ReaderOpts
	header  Header
	cur     *Alignment
	err     error
}

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ReaderOpts) *Reader {
	scanner := bufio.NewScanner(r)
	// Long-read SEQ/QUAL fields can far exceed bufio's default token limit.
	scanner.Buffer(nil, bufferInitSize)
	return &Reader{scanner: scanner, opts: opts}
}

// Scan advances to the next alignment line.  It returns false at end of
// stream or on error; Err separates the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == '@' {
			r.header.Add(line)
			continue
		}
		a, err := ParseAlignment(line)
		if err != nil {
			if r.opts.SkipInvalid {
				continue
			}
			r.err = err
			return false
		}
		r.cur = a
		return true
	}
	r.err = r.scanner.Err()
	return false
}

// Alignment returns the alignment scanned by the last successful Scan.
func (r *Reader) Alignment() *Alignment { return r.cur }

// Entry implements interval.Source.
func (r *Reader) Entry() interval.Entry { return r.cur }

// Err returns the first error encountered by Scan, or nil at clean EOF.
func (r *Reader) Err() error { return r.err }

// Header returns the header lines seen so far, grouped by record type.
func (r *Reader) Header() *Header { return &r.header }
