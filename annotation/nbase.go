package annotation

import (
	"strings"

	"github.com/taeyoungh/gatk/pileup"
	"github.com/taeyoungh/gatk/vcf"
)

const (
	// NBaseCountName is the registry name of NBaseCount.
	NBaseCountName = "NBaseCount"

	// PercentNBaseSolidKey is the INFO key set by NBaseCount. The value is
	// a fraction in [0,1), not a percentage.
	PercentNBaseSolidKey = "PercentNBaseSolid"

	solidPlatform = "SOLID"
)

func init() {
	Register(NBaseCountName, func() InfoFieldAnnotation { return NBaseCount{} })
}

// NBaseCount reports the fraction of N bases among the bases of SOLiD
// reads covering a site.
type NBaseCount struct{}

// Annotate counts N and regular bases of reads whose platform mentions
// SOLiD, over all samples. It returns nil when there is no sample.
func (NBaseCount) Annotate(_ vcf.Site, stratified pileup.Stratified, _ *vcf.Record, _ pileup.Likelihoods) Result {
	if len(stratified) == 0 {
		return nil
	}

	var countN, countRegular int
	for _, ctx := range stratified {
		if ctx == nil {
			continue
		}
		for _, e := range ctx.Elements {
			platform, ok := e.Read.Platform()
			if !ok || !IsSolid(platform) {
				continue
			}
			if pileup.IsNBase(e.Base) {
				countN++
			} else if pileup.IsRegularBase(e.Base) {
				countRegular++
			}
		}
	}

	return Result{PercentNBaseSolidKey: FormatFixed(NBaseFraction(countN, countRegular), 4)}
}

func (NBaseCount) KeyNames() []string { return []string{PercentNBaseSolidKey} }

func (NBaseCount) Descriptions() []vcf.InfoHeaderLine {
	return []vcf.InfoHeaderLine{{
		ID:          PercentNBaseSolidKey,
		Number:      1,
		Type:        vcf.Float,
		Description: "Percentage of N bases in the pileup (counting only SOLiD reads)",
	}}
}

// IsSolid reports whether a platform label names the SOLiD family,
// e.g. "SOLiD4" or "AB_SOLID".
func IsSolid(platform string) bool {
	return strings.Contains(strings.ToUpper(platform), solidPlatform)
}

// NBaseFraction is countN / (countN + countRegular + 1).
// The extra 1 keeps the value defined when both counts are zero.
func NBaseFraction(countN, countRegular int) float64 {
	return float64(countN) / float64(countN+countRegular+1)
}
