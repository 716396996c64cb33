// Package fasta contains code for parsing FASTA files.  FASTA files consist
// of a number of named sequences whose bases may be interrupted by newlines:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Sequence names are the stretch of characters excluding spaces immediately
// after '>'; any text after a space is ignored, so '>chr1 A viral sequence'
// becomes 'chr1'.  Sequences can be consumed one at a time with Scanner or
// loaded whole with New; indexed (faidx) access is not supported.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB
)

// Fasta represents FASTA-formatted data held in memory, consisting of a set
// of named sequences.
type Fasta interface {
	// Get returns a substring of the given sequence at the given 0-based
	// half-open interval [start, end).
	Get(seqName string, start, end uint64) (string, error)

	// Len returns the length of the given sequence.
	Len(seqName string) (uint64, error)

	// SeqNames returns the names of all sequences, in the order of appearance
	// in the FASTA file.
	SeqNames() []string
}

type fasta struct {
	seqs     map[string]string
	seqNames []string
}

// Scanner reads a FASTA stream one named sequence at a time, without
// materializing the rest of the file.  Multi-line sequences are joined;
// empty lines are skipped.
type Scanner struct {
	scanner *bufio.Scanner
	name    string
	seq     strings.Builder
	curName string
	curSeq  string
	started bool
	done    bool
	err     error
}

// NewScanner returns a Scanner over r.
func NewScanner(r io.Reader) *Scanner {
	scanner := bufio.NewScanner(r)
	// Unwrapped sequences can far exceed bufio's default token limit.
	scanner.Buffer(nil, bufferInitSize)
	return &Scanner{scanner: scanner}
}

// Scan advances to the next sequence.  It returns false at end of stream or
// on error; Err separates the two.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if s.started {
				// Emit the sequence accumulated so far.
				s.curName, s.curSeq = s.name, s.seq.String()
				s.seq.Reset()
				s.name = strings.SplitN(line[1:], " ", 2)[0]
				return true
			}
			s.started = true
			s.name = strings.SplitN(line[1:], " ", 2)[0]
			continue
		}
		if !s.started {
			s.err = errors.New("fasta: sequence data before first header")
			return false
		}
		s.seq.WriteString(line)
	}
	s.done = true
	if err := s.scanner.Err(); err != nil {
		s.err = errors.Wrap(err, "fasta: read failed")
		return false
	}
	if !s.started {
		return false
	}
	s.curName, s.curSeq = s.name, s.seq.String()
	s.seq.Reset()
	return true
}

// Name returns the name of the sequence scanned by the last successful Scan.
func (s *Scanner) Name() string { return s.curName }

// Seq returns the bases of the sequence scanned by the last successful Scan.
func (s *Scanner) Seq() string { return s.curSeq }

// Err returns the first error encountered by Scan, or nil at clean EOF.
func (s *Scanner) Err() error { return s.err }

// New creates a Fasta that holds all the FASTA data from the given reader in
// memory.
func New(r io.Reader) (Fasta, error) {
	f := &fasta{seqs: make(map[string]string)}
	scanner := NewScanner(r)
	for scanner.Scan() {
		f.seqs[scanner.Name()] = scanner.Seq()
		f.seqNames = append(f.seqNames, scanner.Name())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(f.seqNames) == 0 {
		return nil, errors.New("fasta: no sequences found")
	}
	return f, nil
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end uint64) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("fasta: sequence not found: %s", seqName)
	}
	if end <= start {
		return "", errors.New("fasta: start must be less than end")
	}
	if end > uint64(len(s)) {
		return "", errors.Errorf("fasta: invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return s[start:end], nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seqName string) (uint64, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("fasta: sequence not found: %s", seqName)
	}
	return uint64(len(s)), nil
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}
