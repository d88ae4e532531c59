package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSam = "@HD\tVN:1.0\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:100\n" +
	"@RG\tID:rg1\tSM:s1\tPL:SOLiD4\n" +
	"r1\t0\tchr1\t1\t60\t3M\t*\t0\t0\tANN\tIII\tRG:Z:rg1\n" +
	"r2\t0\tchr1\t2\t60\t2M\t*\t0\t0\tAA\tII\tRG:Z:rg1\n"

func unsetFlags(dir string) cmdFlags {
	return cmdFlags{config: "config", workspace: dir, minMapQual: -1, minBaseQual: -1}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg := cmdConfig{bamFile: "/data/sample1.bam"}
	require.NoError(t, parseConfig(&cfg, unsetFlags(t.TempDir())))

	assert.Equal(t, []string{"NBaseCount"}, cfg.annotations)
	assert.Equal(t, 0, cfg.minMapQual)
	assert.Equal(t, 0, cfg.minBaseQual)
	assert.Equal(t, "sample1", cfg.sample)
	assert.Equal(t, runtime.NumCPU(), cfg.ncpu)
}

func TestParseConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	yaml := "annotations:\n  - NBaseCount\nmin-map-qual: 20\nmin-base-qual: 10\nsample: fromfile\nncpu: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg := cmdConfig{bamFile: "x.bam"}
	require.NoError(t, parseConfig(&cfg, unsetFlags(dir)))
	assert.Equal(t, 20, cfg.minMapQual)
	assert.Equal(t, 10, cfg.minBaseQual)
	assert.Equal(t, "fromfile", cfg.sample)
	assert.Equal(t, 2, cfg.ncpu)

	flags := unsetFlags(dir)
	flags.minMapQual = 30
	flags.sample = "fromflag"
	require.NoError(t, parseConfig(&cfg, flags))
	assert.Equal(t, 30, cfg.minMapQual)
	assert.Equal(t, 10, cfg.minBaseQual)
	assert.Equal(t, "fromflag", cfg.sample)
}

func TestParseConfigRejectsBadQuality(t *testing.T) {
	flags := unsetFlags(t.TempDir())
	flags.minBaseQual = 300
	cfg := cmdConfig{bamFile: "x.bam"}
	assert.Error(t, parseConfig(&cfg, flags))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	samFile := filepath.Join(dir, "in.sam")
	require.NoError(t, os.WriteFile(samFile, []byte(testSam), 0o644))
	sitesFile := filepath.Join(dir, "sites.tsv")
	require.NoError(t, os.WriteFile(sitesFile, []byte("chr1\t2\tA\tN\nchr1\t3\tN\tA\nchr1\t90\tG\tC\n"), 0o644))
	outFile := filepath.Join(dir, "out.vcf")

	cfg := cmdConfig{bamFile: samFile, outFile: outFile, sitesFile: sitesFile, sam: true}
	require.NoError(t, parseConfig(&cfg, unsetFlags(dir)))
	require.NoError(t, run(cfg))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	want := "##fileformat=VCFv4.1\n" +
		`##INFO=<ID=PercentNBaseSolid,Number=1,Type=Float,Description="Percentage of N bases in the pileup (counting only SOLiD reads)">` + "\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"chr1\t2\t.\tA\tN\t.\t.\tPercentNBaseSolid=0.3333\n" +
		"chr1\t3\t.\tN\tA\t.\t.\tPercentNBaseSolid=0.3333\n" +
		"chr1\t90\t.\tG\tC\t.\t.\t.\n"
	assert.Equal(t, want, string(out))
}

func TestRunUnknownAnnotation(t *testing.T) {
	cfg := cmdConfig{bamFile: "x.sam", outFile: "y.vcf", sam: true, annotations: []string{"Nope"}}
	assert.Error(t, run(cfg))
}

func TestRunWithEmptySitesFile(t *testing.T) {
	dir := t.TempDir()
	samFile := filepath.Join(dir, "in.sam")
	require.NoError(t, os.WriteFile(samFile, []byte(testSam), 0o644))
	sitesFile := filepath.Join(dir, "sites.tsv")
	require.NoError(t, os.WriteFile(sitesFile, []byte("# chrom\tpos\tref\talt\n"), 0o644))
	outFile := filepath.Join(dir, "out.vcf")

	cfg := cmdConfig{bamFile: samFile, outFile: outFile, sitesFile: sitesFile, sam: true}
	require.NoError(t, parseConfig(&cfg, unsetFlags(dir)))
	require.NoError(t, run(cfg))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header only")
	assert.True(t, strings.HasPrefix(lines[2], "#CHROM"))
}

func TestRunAllColumns(t *testing.T) {
	dir := t.TempDir()
	samFile := filepath.Join(dir, "in.sam")
	require.NoError(t, os.WriteFile(samFile, []byte(testSam), 0o644))
	outFile := filepath.Join(dir, "out.vcf")

	cfg := cmdConfig{bamFile: samFile, outFile: outFile, sam: true}
	require.NoError(t, parseConfig(&cfg, unsetFlags(dir)))
	require.NoError(t, run(cfg))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "chr1\t1\t.\tN\t.\t.\t.\tPercentNBaseSolid=0.0000", lines[3])
	assert.Equal(t, "chr1\t3\t.\tN\t.\t.\t.\tPercentNBaseSolid=0.3333", lines[5])
}

func TestNewProgressBar(t *testing.T) {
	bar := newProgressBar(true, 3)
	assert.Equal(t, int64(3), bar.Total)
	assert.True(t, bar.ShowBar)

	counter := newProgressBar(false, 0)
	assert.False(t, counter.ShowBar)
	assert.False(t, counter.ShowPercent)
	assert.False(t, counter.ShowTimeLeft)
}
