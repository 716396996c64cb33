package vcf

import (
	"bufio"
	"io"

	"github.com/seqlab/bio/interval"
)

// ReaderOpts controls Reader behavior.
type ReaderOpts struct {
	// SkipInvalid drops data lines that fail to parse instead of stopping
	// the scan with an error.
	SkipInvalid bool
}

// Reader scans a plain-text VCF stream one variant at a time.  Meta-header
// lines are accumulated as they are encountered.  Reader implements
// interval.Source.
type Reader struct {
	scanner *bufio.Scanner
	opts    ReaderOpts
	meta    Meta
	cur     *Variant
	err     error
}

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ReaderOpts) *Reader {
	scanner := bufio.NewScanner(r)
	// Large ALT/INFO columns can exceed bufio's default token limit.
	scanner.Buffer(nil, bufferInitSize)
	return &Reader{scanner: scanner, opts: opts}
}

// Scan advances to the next data line.  It returns false at end of stream or
// on error; Err separates the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == '#' {
			r.meta.Add(line)
			continue
		}
		v, err := ParseVariant(line)
		if err != nil {
			if r.opts.SkipInvalid {
				continue
			}
			r.err = err
			return false
		}
		r.cur = v
		return true
	}
	r.err = r.scanner.Err()
	return false
}

// Variant returns the variant scanned by the last successful Scan.
func (r *Reader) Variant() *Variant { return r.cur }

// Entry implements interval.Source.
func (r *Reader) Entry() interval.Entry { return r.cur }

// Err returns the first error encountered by Scan, or nil at clean EOF.
func (r *Reader) Err() error { return r.err }

// Meta returns the meta-header lines seen so far, grouped by key.
func (r *Reader) Meta() *Meta { return &r.meta }
