package vcf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqlab/bio/encoding/vcf"
)

func TestMetaGrouping(t *testing.T) {
	var m vcf.Meta
	m.Add("##fileformat=VCFv4.2")
	m.Add("##INFO=<ID=DP,Number=1,Type=Integer,Description=\"Total Depth\">")
	m.Add("##FILTER=<ID=q10,Description=\"Quality below 10\">")
	m.Add("##INFO=<ID=AF,Number=A,Type=Float,Description=\"Allele Frequency\">")
	m.Add("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO")

	groups := m.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "fileformat", groups[0].Key)
	assert.Equal(t, "INFO", groups[1].Key)
	assert.Equal(t, "FILTER", groups[2].Key)
	assert.Len(t, m.Lines("INFO"), 2)
	assert.Nil(t, m.Lines("FORMAT"))
	assert.Equal(t, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO", m.ColumnLine)
}

func TestMetaKeyWithoutEquals(t *testing.T) {
	var m vcf.Meta
	m.Add("##freeform comment line")
	groups := m.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "freeform comment line", groups[0].Key)
}
