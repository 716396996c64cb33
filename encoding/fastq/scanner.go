// Package fastq parses plain-text FASTQ files (4 lines per read) and
// computes per-file and per-base-position summary statistics.  Paired-end
// semantics are out of scope; each stream is scanned independently.
package fastq

import (
	"bufio"
	"errors"
	"io"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is one FASTQ record.  ID is the identifier line without the leading
// "@"; Qual is the Phred+33 quality string, always the same length as Seq.
type Read struct {
	ID, Seq, Qual string
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read data one
// record at a time.  The Scan method returns the next read, returning a
// boolean indicating whether the read succeeded.  Scanners are not
// threadsafe.
//
// Scanner validates record structure: the ID line must begin with "@", line
// 3 must begin with "+", and the quality string must be exactly as long as
// the sequence.
type Scanner struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next read into the provided read.  Scan returns a boolean
// indicating whether the scan succeeded.  Once Scan returns false, it never
// returns true again.  Upon completion, the user should check the Err method
// to determine whether scanning stopped because of an error or because the
// end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errEOF
		}
		return false
	}
	id := f.b.Bytes()
	if len(id) == 0 || id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	read.ID = string(id[1:])
	if !f.scan() {
		return false
	}
	read.Seq = f.b.Text()
	if !f.scan() {
		return false
	}
	plus := f.b.Bytes()
	if len(plus) == 0 || plus[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	if !f.scan() {
		return false
	}
	read.Qual = f.b.Text()
	if len(read.Qual) != len(read.Seq) {
		f.err = ErrInvalid
		return false
	}
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
	}
	return ok
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
