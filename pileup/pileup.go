// Package pileup holds the per-sample view of aligned read bases at a
// reference position, and builds it from coordinate-sorted SAM records.
package pileup

// ReadGroup is the subset of a SAM @RG line used by annotations.
type ReadGroup struct {
	ID       string  // RG ID.
	Sample   string  // SM, empty if absent.
	Platform *string // PL, nil if absent.
}

// NewReadGroup returns a read group. An empty platform is recorded as absent.
func NewReadGroup(id, sample, platform string) *ReadGroup {
	rg := ReadGroup{ID: id, Sample: sample}
	if platform != "" {
		rg.Platform = &platform
	}
	return &rg
}

// Read is an aligned read as seen from a pileup.
type Read struct {
	Name  string
	Group *ReadGroup // nil if the read carries no known read group.
}

// Platform returns the platform of the read's group.
// ok is false when the read has no group or the group has no platform.
func (r *Read) Platform() (platform string, ok bool) {
	if r == nil || r.Group == nil || r.Group.Platform == nil {
		return "", false
	}
	return *r.Group.Platform, true
}

// Element is a single base observation at a position.
// Read points into reads owned by the builder; elements do not own it.
type Element struct {
	Base byte
	Qual byte
	Read *Read
}

// Context is one sample's pileup at a position.
type Context struct {
	Sample   string
	Elements []Element
}

// Len returns the depth of the pileup.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Elements)
}

// Add appends an element.
func (c *Context) Add(e Element) {
	c.Elements = append(c.Elements, e)
}

// Stratified maps a sample name to its pileup.
type Stratified map[string]*Context

// Depth returns the total number of elements over all samples.
func (s Stratified) Depth() (n int) {
	for _, c := range s {
		n += c.Len()
	}
	return
}

// Column holds every sample's pileup at one reference position.
type Column struct {
	Ref        string
	Pos        int // 0-based.
	Stratified Stratified
}

// Likelihoods holds, per sample, per read name, the log10 likelihood of
// each allele.
type Likelihoods map[string]map[string]map[string]float64
