package pileup

const (
	// Deletion marks a reference position spanned by a deletion in a read.
	Deletion byte = '-'

	// RefSkip marks a reference position skipped by a read, such as an
	// intron. It never enters a pileup.
	RefSkip byte = 0
)

var baseClass [256]byte

const (
	classOther byte = iota
	classRegular
	classN
)

func init() {
	for _, b := range []byte("ACGTacgt") {
		baseClass[b] = classRegular
	}
	baseClass['N'] = classN
	baseClass['n'] = classN
}

// IsNBase reports whether b is the no-call base.
func IsNBase(b byte) bool { return baseClass[b] == classN }

// IsRegularBase reports whether b is one of A, C, G, T in either case.
// Ambiguity codes, gaps and deletions are not regular.
func IsRegularBase(b byte) bool { return baseClass[b] == classRegular }
