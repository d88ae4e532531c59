// Package vcf provides the variant site record that annotations attach
// INFO fields to, INFO header metadata, and a minimal VCF text writer.
package vcf

import "sort"

// Site is the reference context of a record.
type Site struct {
	Chrom string
	Pos   int  // 0-based.
	Base  byte // reference base, 'N' if unknown.
}

// Record is a single VCF data line.
type Record struct {
	Chrom string
	Pos   int // 1-based.
	ID    string
	Ref   string
	Alt   []string
	Info  map[string]string
}

// Site returns the reference context of the record.
func (r *Record) Site() Site {
	s := Site{Chrom: r.Chrom, Pos: r.Pos - 1, Base: 'N'}
	if len(r.Ref) > 0 {
		s.Base = r.Ref[0]
	}
	return s
}

// SetInfo sets an INFO field.
func (r *Record) SetInfo(key, value string) {
	if r.Info == nil {
		r.Info = make(map[string]string)
	}
	r.Info[key] = value
}

// InfoKeys returns the INFO keys in sorted order.
func (r *Record) InfoKeys() []string {
	keys := make([]string, 0, len(r.Info))
	for k := range r.Info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Alt = append([]string(nil), r.Alt...)
	c.Info = nil
	for k, v := range r.Info {
		c.SetInfo(k, v)
	}
	return &c
}
