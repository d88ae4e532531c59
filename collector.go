package gatk

import (
	"sort"
	"strconv"

	"github.com/taeyoungh/gatk/vcf"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the values of one INFO key over many records.
type Summary struct {
	Key    string
	N      int
	Mean   float64
	StdDev float64 // NaN if N < 2.
}

// Collector gathers numeric INFO values.
type Collector struct {
	m map[string][]float64
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{m: make(map[string][]float64)}
}

// Add collects the numeric INFO values of a record.
func (c *Collector) Add(rec *vcf.Record) {
	for k, v := range rec.Info {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		c.m[k] = append(c.m[k], x)
	}
}

// Summaries returns one summary per key, sorted by key.
func (c *Collector) Summaries() (summaries []Summary) {
	for k, xs := range c.m {
		mean, std := stat.MeanStdDev(xs, nil)
		summaries = append(summaries, Summary{Key: k, N: len(xs), Mean: mean, StdDev: std})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })
	return
}
