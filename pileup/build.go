package pileup

import (
	"sort"

	"github.com/biogo/hts/sam"
)

var (
	rgTag       = sam.NewTag("RG")
	sampleTag   = sam.NewTag("SM")
	platformTag = sam.NewTag("PL")
)

// DefaultFlagExclude drops unmapped, secondary, QC-failed and duplicate reads.
const DefaultFlagExclude = sam.Unmapped | sam.Secondary | sam.QCFail | sam.Duplicate

// Options controls which reads and bases enter a pileup.
type Options struct {
	MinMapQual    byte      // reads below this mapping quality are skipped.
	MinBaseQual   byte      // bases below this quality are skipped; deletions are kept.
	FlagExclude   sam.Flags // reads with any of these flags are skipped.
	DefaultSample string    // sample for reads without a group sample.
}

// DefaultOptions returns options that keep every primary, mapped,
// non-duplicate read.
func DefaultOptions() Options {
	return Options{FlagExclude: DefaultFlagExclude}
}

// ReadGroupsFromHeader indexes the header's read groups by ID.
func ReadGroupsFromHeader(h *sam.Header) map[string]*ReadGroup {
	m := make(map[string]*ReadGroup)
	if h == nil {
		return m
	}
	for _, rg := range h.RGs() {
		m[rg.Name()] = NewReadGroup(rg.Name(), rg.Get(sampleTag), rg.Get(platformTag))
	}
	return m
}

// AlignedBases returns the bases and qualities of a read laid onto the
// reference, starting at r.Pos. Deleted reference positions are filled
// with Deletion, skipped ones with RefSkip, both with quality 0.
func AlignedBases(r *sam.Record) (bases []byte, quals []byte) {
	p := 0                 // position in the read sequence.
	read := r.Seq.Expand() // read sequence.
	qual := r.Qual
	for _, c := range r.Cigar {
		switch c.Type() {
		case sam.CigarMatch, sam.CigarMismatch, sam.CigarEqual:
			for i := p; i < p+c.Len() && i < len(read); i++ {
				bases = append(bases, read[i])
				if i < len(qual) {
					quals = append(quals, qual[i])
				} else {
					quals = append(quals, 0xff)
				}
			}
			p += c.Len()
		case sam.CigarInsertion, sam.CigarSoftClipped:
			p += c.Len()
		case sam.CigarDeletion:
			for i := 0; i < c.Len(); i++ {
				bases = append(bases, Deletion)
				quals = append(quals, 0)
			}
		case sam.CigarSkipped:
			for i := 0; i < c.Len(); i++ {
				bases = append(bases, RefSkip)
				quals = append(quals, 0)
			}
		}
	}

	return
}

// piler accumulates columns for one reference at a time.
type piler struct {
	groups map[string]*ReadGroup
	opts   Options
	ref    string
	m      map[int]*Column
}

func newPiler(groups map[string]*ReadGroup, opts Options) *piler {
	return &piler{groups: groups, opts: opts, m: make(map[int]*Column)}
}

func (p *piler) keep(r *sam.Record) bool {
	if r.Ref == nil || r.Flags&p.opts.FlagExclude != 0 {
		return false
	}
	return r.MapQ >= p.opts.MinMapQual
}

func (p *piler) read(r *sam.Record) *Read {
	read := Read{Name: r.Name}
	if aux := r.AuxFields.Get(rgTag); aux != nil {
		if id, ok := aux.Value().(string); ok {
			read.Group = p.groups[id]
		}
	}
	return &read
}

// add piles up a record and returns the columns that can no longer grow.
func (p *piler) add(r *sam.Record) (done []*Column) {
	if !p.keep(r) {
		return nil
	}
	if r.Ref.Name() != p.ref {
		done = p.flush(-1)
		p.ref = r.Ref.Name()
	}
	done = append(done, p.flush(r.Pos)...)

	read := p.read(r)
	sample := p.opts.DefaultSample
	if read.Group != nil && read.Group.Sample != "" {
		sample = read.Group.Sample
	}

	bases, quals := AlignedBases(r)
	for i, b := range bases {
		if b == RefSkip || (b != Deletion && quals[i] < p.opts.MinBaseQual) {
			continue
		}
		pos := r.Pos + i
		col, found := p.m[pos]
		if !found {
			col = &Column{Ref: p.ref, Pos: pos, Stratified: make(Stratified)}
			p.m[pos] = col
		}
		ctx, found := col.Stratified[sample]
		if !found {
			ctx = &Context{Sample: sample}
			col.Stratified[sample] = ctx
		}
		ctx.Add(Element{Base: b, Qual: quals[i], Read: read})
	}

	return
}

// flush removes and returns, sorted by position, the columns left of
// minPos. A negative minPos flushes everything.
func (p *piler) flush(minPos int) (cols []*Column) {
	for pos, col := range p.m {
		if minPos < 0 || pos < minPos {
			cols = append(cols, col)
			delete(p.m, pos)
		}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].Pos < cols[j].Pos })
	return
}

// Pileup groups the bases of coordinate-sorted records into columns.
// Columns are sent in reference order; the output is closed once the
// input is drained.
func Pileup(input <-chan *sam.Record, groups map[string]*ReadGroup, opts Options) (output chan *Column) {
	output = make(chan *Column)
	go func() {
		defer close(output)
		p := newPiler(groups, opts)
		for r := range input {
			for _, col := range p.add(r) {
				output <- col
			}
		}
		for _, col := range p.flush(-1) {
			output <- col
		}
	}()

	return
}

// Columns is the slice form of Pileup.
func Columns(records []*sam.Record, groups map[string]*ReadGroup, opts Options) (cols []*Column) {
	p := newPiler(groups, opts)
	for _, r := range records {
		cols = append(cols, p.add(r)...)
	}
	return append(cols, p.flush(-1)...)
}
