package sam_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/seqlab/bio/encoding/sam"
	"github.com/seqlab/bio/interval"
)

const testSAM = `@HD	VN:1.5	SO:coordinate
@SQ	SN:chr1	LN:248956422
@SQ	SN:chr2	LN:242193529
@PG	ID:bwa	PN:bwa
r001	99	chr1	7	30	8M2I4M1D3M	=	37	39	TTAGATAAAGGATACTG	*
r002	0	chr1	100	30	10M	*	0	0	AAAAGATAAG	*
r003	0	chr2	7	30	16M	*	0	0	GCCTAAGCTAAGCCTA	*
r004	4	chr1	50	0	*	*	0	0	ATAGCT	*
`

func TestParseAlignment(t *testing.T) {
	a, err := sam.ParseAlignment("r001\t99\tchr1\t7\t30\t8M2I4M1D3M\t=\t37\t39\tTTAGATAAAGGATACTG\t*")
	assert.NoError(t, err)
	expect.EQ(t, a.Name, "r001")
	expect.EQ(t, a.Ref, "chr1")
	expect.EQ(t, a.Pos, interval.PosType(7))
	expect.EQ(t, a.MapQ, byte(30))
	expect.EQ(t, a.Cigar, "8M2I4M1D3M")
	expect.EQ(t, a.End(), interval.PosType(22))
	assert.EQ(t, len(a.Fields), 11)
	expect.EQ(t, a.Fields[9], "TTAGATAAAGGATACTG")
}

func TestParseAlignmentUnmapped(t *testing.T) {
	a, err := sam.ParseAlignment("r004\t4\tchr1\t50\t0\t*\t*\t0\t0\tATAGCT\t*")
	assert.NoError(t, err)
	expect.EQ(t, a.End(), a.Pos)
}

func TestParseAlignmentErrors(t *testing.T) {
	// Too few fields.
	_, err := sam.ParseAlignment("r001\t99\tchr1\t7")
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "fields")

	// Non-numeric POS.
	_, err = sam.ParseAlignment("r001\t99\tchr1\tx\t30\t10M\t*\t0\t0\tAAAA\t*")
	expect.NotNil(t, err)

	// Out-of-range MAPQ.
	_, err = sam.ParseAlignment("r001\t99\tchr1\t7\t300\t10M\t*\t0\t0\tAAAA\t*")
	expect.NotNil(t, err)
	assert.HasSubstr(t, err.Error(), "MAPQ")

	// Malformed CIGAR surfaces the typed error.
	_, err = sam.ParseAlignment("r001\t99\tchr1\t7\t30\t10M3\t*\t0\t0\tAAAA\t*")
	expect.NotNil(t, err)
	_, ok := err.(*sam.MalformedCigarError)
	expect.True(t, ok, "got %v", err)
}

func TestReader(t *testing.T) {
	r := sam.NewReader(strings.NewReader(testSAM), sam.ReaderOpts{})
	var names []string
	for r.Scan() {
		names = append(names, r.Alignment().Name)
	}
	assert.NoError(t, r.Err())
	assert.EQ(t, names, []string{"r001", "r002", "r003", "r004"})

	h := r.Header()
	assert.EQ(t, len(h.Groups()), 3)
	expect.EQ(t, h.Groups()[0].Tag, "@HD")
	assert.EQ(t, h.Lines("@SQ"), []string{
		"@SQ\tSN:chr1\tLN:248956422",
		"@SQ\tSN:chr2\tLN:242193529",
	})
	expect.Nil(t, h.Lines("@RG"))
}

func TestReaderSkipInvalid(t *testing.T) {
	const data = "r001\t99\tchr1\t7\t30\t10M\t*\t0\t0\tAAAA\t*\nshort\tline\n" +
		"r002\t0\tchr1\t40\t30\t5M\t*\t0\t0\tAAAA\t*\n"

	r := sam.NewReader(strings.NewReader(data), sam.ReaderOpts{})
	expect.True(t, r.Scan())
	expect.False(t, r.Scan())
	expect.NotNil(t, r.Err())

	r = sam.NewReader(strings.NewReader(data), sam.ReaderOpts{SkipInvalid: true})
	var names []string
	for r.Scan() {
		names = append(names, r.Alignment().Name)
	}
	assert.NoError(t, r.Err())
	assert.EQ(t, names, []string{"r001", "r002"})
}

func TestReaderFindOverlapping(t *testing.T) {
	r := sam.NewReader(strings.NewReader(testSAM), sam.ReaderOpts{})
	hits, err := interval.FindOverlapping(r, "chr1", 20, 50)
	assert.NoError(t, err)
	assert.EQ(t, len(hits), 2)
	expect.EQ(t, hits[0].(*sam.Alignment).Name, "r001") // [7,22] touches 20
	expect.EQ(t, hits[1].(*sam.Alignment).Name, "r004") // unmapped CIGAR, [50,50]
}

func TestReaderLongLine(t *testing.T) {
	// Long-read SEQ/QUAL fields can exceed bufio's default 64 KiB token limit.
	n := 80 * 1024
	line := "r001\t0\tchr1\t100\t30\t" + strconv.Itoa(n) + "M\t*\t0\t0\t" +
		strings.Repeat("A", n) + "\t" + strings.Repeat("I", n) + "\n"
	r := sam.NewReader(strings.NewReader(line), sam.ReaderOpts{})
	assert.True(t, r.Scan())
	assert.NoError(t, r.Err())
	expect.EQ(t, r.Alignment().End(), interval.PosType(100+n-1))
	expect.False(t, r.Scan())
	assert.NoError(t, r.Err())
}

func TestReadStats(t *testing.T) {
	r := sam.NewReader(strings.NewReader(testSAM), sam.ReaderOpts{})
	stats, err := sam.ReadStats(r)
	assert.NoError(t, err)
	expect.EQ(t, stats.Alignments, int64(4))
	assert.EQ(t, stats.Chroms, []interval.ChromSummary{
		{Chrom: "chr1", Count: 3, MinPos: 7, MaxPos: 100},
		{Chrom: "chr2", Count: 1, MinPos: 7, MaxPos: 7},
	})
}
