package vcf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FileFormat is the version written on the first header line.
const FileFormat = "VCFv4.1"

// Writer writes VCF text.
type Writer struct {
	w     *bufio.Writer
	lines []InfoHeaderLine
}

// NewWriter returns a writer declaring the given INFO fields.
func NewWriter(w io.Writer, lines []InfoHeaderLine) *Writer {
	return &Writer{w: bufio.NewWriter(w), lines: lines}
}

// WriteHeader writes the meta lines and the column header.
func (w *Writer) WriteHeader(samples []string) error {
	fmt.Fprintf(w.w, "##fileformat=%s\n", FileFormat)
	for _, l := range w.lines {
		fmt.Fprintln(w.w, l.String())
	}
	cols := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}
	if len(samples) > 0 {
		cols = append(cols, "FORMAT")
		cols = append(cols, samples...)
	}
	_, err := fmt.Fprintln(w.w, strings.Join(cols, "\t"))
	return err
}

// Write writes one record without genotype columns.
func (w *Writer) Write(r *Record) error {
	alt := strings.Join(r.Alt, ",")
	info := make([]string, 0, len(r.Info))
	for _, k := range r.InfoKeys() {
		info = append(info, k+"="+r.Info[k])
	}
	fields := []string{
		r.Chrom,
		strconv.Itoa(r.Pos),
		missing(r.ID),
		missing(r.Ref),
		missing(alt),
		".",
		".",
		missing(strings.Join(info, ";")),
	}
	_, err := fmt.Fprintln(w.w, strings.Join(fields, "\t"))
	return err
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func missing(s string) string {
	if s == "" {
		return "."
	}
	return s
}
