package vcf

import (
	"fmt"
	"strconv"
)

// HeaderType is the value type of an INFO field.
type HeaderType int

const (
	Integer HeaderType = iota
	Float
	Flag
	Character
	String
)

var headerTypeNames = [...]string{
	Integer:   "Integer",
	Float:     "Float",
	Flag:      "Flag",
	Character: "Character",
	String:    "String",
}

func (t HeaderType) String() string {
	if t < 0 || int(t) >= len(headerTypeNames) {
		return "HeaderType(" + strconv.Itoa(int(t)) + ")"
	}
	return headerTypeNames[t]
}

// Unbounded is the Number of an INFO field with any number of values.
const Unbounded = -1

// InfoHeaderLine describes one INFO field.
type InfoHeaderLine struct {
	ID          string
	Number      int
	Type        HeaderType
	Description string
}

// String renders the line as it appears in a VCF header.
func (l InfoHeaderLine) String() string {
	number := "."
	if l.Number >= 0 {
		number = strconv.Itoa(l.Number)
	}
	return fmt.Sprintf("##INFO=<ID=%s,Number=%s,Type=%s,Description=%s>",
		l.ID, number, l.Type, strconv.Quote(l.Description))
}
