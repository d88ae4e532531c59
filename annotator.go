package gatk

import (
	"runtime"
	"sort"

	"github.com/taeyoungh/gatk/annotation"
	"github.com/taeyoungh/gatk/pileup"
	"github.com/taeyoungh/gatk/vcf"
)

// Annotator runs a set of annotations over pileup columns.
type Annotator struct {
	Annotations []annotation.InfoFieldAnnotation
	NCPU        int    // number of workers; GOMAXPROCS if not positive.
	Progress    func() // called once per annotated record, may be nil.
}

// HeaderLines returns the INFO header lines of all annotations.
func HeaderLines(annotations []annotation.InfoFieldAnnotation) (lines []vcf.InfoHeaderLine) {
	for _, a := range annotations {
		lines = append(lines, a.Descriptions()...)
	}
	return
}

type siteKey struct {
	chrom string
	pos   int // 1-based.
}

type job struct {
	index      int
	rec        *vcf.Record
	stratified pileup.Stratified
}

// AnnotateColumns annotates one record per column, in column order.
func (a *Annotator) AnnotateColumns(columns <-chan *pileup.Column) []*vcf.Record {
	return a.run(func(jobs chan<- job) {
		i := 0
		for col := range columns {
			rec := &vcf.Record{Chrom: col.Ref, Pos: col.Pos + 1, Ref: "N"}
			jobs <- job{index: i, rec: rec, stratified: col.Stratified}
			i++
		}
	})
}

// AnnotateSites annotates copies of the given sites, in sites order.
// Sites without coverage are annotated with an empty pileup; columns at
// no site are drained and dropped.
func (a *Annotator) AnnotateSites(columns <-chan *pileup.Column, sites []vcf.Record) []*vcf.Record {
	return a.run(func(jobs chan<- job) {
		index := make(map[siteKey][]int)
		for i, s := range sites {
			k := siteKey{s.Chrom, s.Pos}
			index[k] = append(index[k], i)
		}
		covered := make([]bool, len(sites))
		for col := range columns {
			for _, i := range index[siteKey{col.Ref, col.Pos + 1}] {
				covered[i] = true
				jobs <- job{index: i, rec: sites[i].Clone(), stratified: col.Stratified}
			}
		}
		for i := range sites {
			if !covered[i] {
				jobs <- job{index: i, rec: sites[i].Clone(), stratified: pileup.Stratified{}}
			}
		}
	})
}

func (a *Annotator) run(feed func(jobs chan<- job)) []*vcf.Record {
	jobs := make(chan job)
	go func() {
		defer close(jobs)
		feed(jobs)
	}()

	ncpu := a.NCPU
	if ncpu <= 0 {
		ncpu = runtime.GOMAXPROCS(0)
	}
	done := make(chan bool)
	results := make(chan job)
	for i := 0; i < ncpu; i++ {
		go func() {
			for j := range jobs {
				a.annotate(j.rec, j.stratified)
				results <- j
			}
			done <- true
		}()
	}

	go func() {
		defer close(results)
		for i := 0; i < ncpu; i++ {
			<-done
		}
	}()

	var finished []job
	for j := range results {
		finished = append(finished, j)
		if a.Progress != nil {
			a.Progress()
		}
	}
	sort.Slice(finished, func(i, k int) bool { return finished[i].index < finished[k].index })

	records := make([]*vcf.Record, len(finished))
	counts := make(map[string]int)
	var refs []string
	for i, j := range finished {
		records[i] = j.rec
		if counts[j.rec.Chrom] == 0 {
			refs = append(refs, j.rec.Chrom)
		}
		counts[j.rec.Chrom]++
	}
	for _, ref := range refs {
		Info.Printf("%s: %d records annotated\n", ref, counts[ref])
	}
	return records
}

func (a *Annotator) annotate(rec *vcf.Record, stratified pileup.Stratified) {
	site := rec.Site()
	for _, ann := range a.Annotations {
		res := ann.Annotate(site, stratified, rec, nil)
		if err := annotation.CheckResult(ann, res); err != nil {
			Warn.Printf("%s:%d: %v", rec.Chrom, rec.Pos, err)
			continue
		}
		for k, v := range res {
			rec.SetInfo(k, v)
		}
	}
}
