package fasta_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/seqlab/bio/encoding/fasta"
)

const fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\n" + "ACGT\n"

func TestGet(t *testing.T) {
	tests := []struct {
		seq   string
		start uint64
		end   uint64
		want  string
		err   error
	}{
		{"seq1", 1, 2, "C", nil},
		{"seq1", 1, 6, "CGTAC", nil},
		{"seq1", 0, 12, "ACGTACGTACGT", nil},
		{"seq1", 10, 12, "GT", nil},
		{"seq2", 0, 8, "ACGTACGT", nil},
		{"seq2", 2, 5, "GTA", nil},
		{"seq0", 0, 1, "", fmt.Errorf("fasta: sequence not found: seq0")},
		{"seq1", 10, 13, "", fmt.Errorf("fasta: invalid query range")},
		{"seq1", 4, 3, "", fmt.Errorf("fasta: start must be less than end")},
	}
	f, err := fasta.New(strings.NewReader(fastaData))
	assert.NoError(t, err)
	for _, tt := range tests {
		got, err := f.Get(tt.seq, tt.start, tt.end)
		if (err == nil) != (tt.err == nil) {
			t.Errorf("unexpected error: want %v, got %v", tt.err, err)
		}
		expect.EQ(t, got, tt.want, "%s [%d,%d)", tt.seq, tt.start, tt.end)
	}
}

func TestSeqNamesAndLen(t *testing.T) {
	f, err := fasta.New(strings.NewReader(fastaData))
	assert.NoError(t, err)
	assert.EQ(t, f.SeqNames(), []string{"seq1", "seq2"})
	n, err := f.Len("seq1")
	assert.NoError(t, err)
	expect.EQ(t, n, uint64(12))
	_, err = f.Len("nope")
	expect.NotNil(t, err)
}

func TestScanner(t *testing.T) {
	sc := fasta.NewScanner(strings.NewReader(fastaData))
	var names, seqs []string
	for sc.Scan() {
		names = append(names, sc.Name())
		seqs = append(seqs, sc.Seq())
	}
	assert.NoError(t, sc.Err())
	assert.EQ(t, names, []string{"seq1", "seq2"})
	assert.EQ(t, seqs, []string{"ACGTACGTACGT", "ACGTACGT"})
}

func TestScannerMalformed(t *testing.T) {
	sc := fasta.NewScanner(strings.NewReader("ACGT\n>seq1\nACGT\n"))
	expect.False(t, sc.Scan())
	expect.NotNil(t, sc.Err())
}

func TestReadStats(t *testing.T) {
	stats, err := fasta.ReadStats(fasta.NewScanner(strings.NewReader(fastaData)))
	assert.NoError(t, err)
	expect.EQ(t, stats.Count, int64(2))
	expect.EQ(t, stats.TotalLen, int64(20))
	expect.EQ(t, stats.MeanLen(), 10.0)
}

func TestScannerLongLine(t *testing.T) {
	// Unwrapped sequences can exceed bufio's default 64 KiB token limit.
	seq := strings.Repeat("A", 80*1024)
	stats, err := fasta.ReadStats(fasta.NewScanner(strings.NewReader(">chr1\n" + seq + "\n")))
	assert.NoError(t, err)
	expect.EQ(t, stats.Count, int64(1))
	expect.EQ(t, stats.TotalLen, int64(len(seq)))
}

func TestReadStatsEmpty(t *testing.T) {
	stats, err := fasta.ReadStats(fasta.NewScanner(strings.NewReader("")))
	assert.NoError(t, err)
	expect.EQ(t, stats.Count, int64(0))
	expect.EQ(t, stats.MeanLen(), 0.0)
}
