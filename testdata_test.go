package gatk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSam = "@HD\tVN:1.0\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:100\n" +
	"@RG\tID:rg1\tSM:s1\tPL:SOLiD4\n" +
	"@RG\tID:rg2\tSM:s2\tPL:ILLUMINA\n" +
	"r1\t0\tchr1\t1\t60\t3M\t*\t0\t0\tANC\tIII\tRG:Z:rg1\n" +
	"r2\t0\tchr1\t2\t60\t3M\t*\t0\t0\tANC\tIII\tRG:Z:rg2\n" +
	"r3\t0\tchr1\t2\t60\t2M\t*\t0\t0\tAA\tII\tRG:Z:rg1\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))
	return fileName
}
