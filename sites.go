package gatk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/taeyoungh/gatk/vcf"
)

// ReadSites reads tab separated "chrom pos ref alt" lines, with 1-based
// positions and comma separated alternate alleles. Blank lines and lines
// starting with '#' are skipped; ref and alt may be omitted.
func ReadSites(r io.Reader) (sites []vcf.Record, err error) {
	sites = []vcf.Record{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		terms := strings.Split(line, "\t")
		if len(terms) < 2 {
			return nil, fmt.Errorf("sites line %d: want at least 2 columns, got %d", n, len(terms))
		}
		pos, err := strconv.Atoi(terms[1])
		if err != nil || pos < 1 {
			return nil, fmt.Errorf("sites line %d: bad position %q", n, terms[1])
		}
		site := vcf.Record{Chrom: terms[0], Pos: pos}
		if len(terms) > 2 && terms[2] != "." {
			site.Ref = strings.ToUpper(terms[2])
		}
		if len(terms) > 3 && terms[3] != "." && terms[3] != "" {
			site.Alt = strings.Split(terms[3], ",")
		}
		sites = append(sites, site)
	}

	return sites, scanner.Err()
}

// ReadSitesFile reads sites from a file.
func ReadSitesFile(fileName string) ([]vcf.Record, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSites(f)
}
