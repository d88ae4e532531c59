// Package annotation defines site-level INFO annotations computed from
// per-sample pileups, and a registry to look them up by name.
package annotation

import (
	"fmt"

	"github.com/taeyoungh/gatk/pileup"
	"github.com/taeyoungh/gatk/vcf"
)

// Result maps INFO keys to formatted values.
// A nil Result means the annotation does not apply and nothing is written.
type Result map[string]string

// InfoFieldAnnotation computes INFO fields for a site.
//
// Annotate must not modify its arguments and must be safe to call
// concurrently for different sites. An empty stratified map is a valid
// input. Elements it cannot interpret are left out of its counts.
type InfoFieldAnnotation interface {
	Annotate(site vcf.Site, stratified pileup.Stratified, vc *vcf.Record, likelihoods pileup.Likelihoods) Result

	// KeyNames returns the INFO keys the annotation may set.
	KeyNames() []string

	// Descriptions returns the header lines of the keys.
	Descriptions() []vcf.InfoHeaderLine
}

// CheckResult returns an error if r sets a key that a does not declare.
func CheckResult(a InfoFieldAnnotation, r Result) error {
	declared := make(map[string]bool)
	for _, k := range a.KeyNames() {
		declared[k] = true
	}
	for k := range r {
		if !declared[k] {
			return fmt.Errorf("annotation %T: undeclared key %q", a, k)
		}
	}
	return nil
}
