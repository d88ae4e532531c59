package gatk

// BAM and SAM file operations.

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// A container for a group of SAM records.
// It implements sort.Interface for sorting by coordinate.
type SamRecords []*sam.Record

func (sr SamRecords) Len() int      { return len(sr) }
func (sr SamRecords) Swap(i, j int) { sr[i], sr[j] = sr[j], sr[i] }

// A wrapper for sorting SAM records by reference and left coordinate.
// Unmapped records go last.
type ByCoordinate struct{ SamRecords }

func (b ByCoordinate) Less(i, j int) bool {
	ri, rj := b.SamRecords[i].Ref, b.SamRecords[j].Ref
	switch {
	case ri == nil:
		return false
	case rj == nil:
		return true
	case ri.ID() != rj.ID():
		return ri.ID() < rj.ID()
	}
	return b.SamRecords[i].Pos < b.SamRecords[j].Pos
}

type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

// AlignmentFile is an open BAM or SAM file.
type AlignmentFile struct {
	f      *os.File
	r      recordReader
	closer io.Closer
}

// OpenBam opens a BAM file. rd is the decompression concurrency;
// zero means GOMAXPROCS.
func OpenBam(fileName string, rd int) (*AlignmentFile, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	reader, err := bam.NewReader(f, rd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading bam header of %s: %w", fileName, err)
	}
	return &AlignmentFile{f: f, r: reader, closer: reader}, nil
}

// OpenSam opens a SAM file.
func OpenSam(fileName string) (*AlignmentFile, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	reader, err := sam.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading sam header of %s: %w", fileName, err)
	}
	return &AlignmentFile{f: f, r: reader}, nil
}

// Header returns the file header.
func (a *AlignmentFile) Header() *sam.Header {
	return a.r.Header()
}

// ReadAll reads the remaining records.
func (a *AlignmentFile) ReadAll() (records SamRecords, err error) {
	for {
		r, err := a.r.Read()
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return records, err
		}
		records = append(records, r)
	}
}

// Stream sends the remaining records on c, in file order.
// Both channels are closed at the end; a read error other than EOF is
// sent on errc first.
func (a *AlignmentFile) Stream() (c chan *sam.Record, errc chan error) {
	c = make(chan *sam.Record)
	errc = make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(c)
		for {
			rec, err := a.r.Read()
			if err != nil {
				if err != io.EOF {
					errc <- err
				}
				return
			}
			c <- rec
		}
	}()

	return
}

// Close closes the reader and the file.
func (a *AlignmentFile) Close() error {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.f.Close()
			return err
		}
	}
	return a.f.Close()
}

// SortedRecords sorts records by coordinate and sends them on a channel.
func SortedRecords(records SamRecords) chan *sam.Record {
	sort.Stable(ByCoordinate{records})
	c := make(chan *sam.Record)
	go func() {
		defer close(c)
		for _, r := range records {
			c <- r
		}
	}()
	return c
}
