package gatk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taeyoungh/gatk/vcf"
)

func TestReadSites(t *testing.T) {
	in := "# chrom\tpos\tref\talt\n" +
		"chr1\t2\tn\tA,T\n" +
		"\n" +
		"chr1\t50\n" +
		"chr2\t3\tC\t.\n"
	sites, err := ReadSites(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []vcf.Record{
		{Chrom: "chr1", Pos: 2, Ref: "N", Alt: []string{"A", "T"}},
		{Chrom: "chr1", Pos: 50},
		{Chrom: "chr2", Pos: 3, Ref: "C"},
	}, sites)
}

func TestReadSitesEmpty(t *testing.T) {
	sites, err := ReadSites(strings.NewReader("# only a comment\n\n"))
	require.NoError(t, err)
	assert.NotNil(t, sites)
	assert.Empty(t, sites)
}

func TestReadSitesErrors(t *testing.T) {
	for _, in := range []string{"chr1\n", "chr1\tx\n", "chr1\t0\n"} {
		_, err := ReadSites(strings.NewReader(in))
		assert.Error(t, err, "%q", in)
	}
	_, err := ReadSitesFile("does/not/exist")
	assert.Error(t, err)
}
