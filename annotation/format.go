package annotation

import (
	"strconv"
	"strings"
)

// FormatFixed formats f with exactly digits fractional digits. The
// shortest decimal representation of f is rounded half away from zero,
// so 0.00015 gives "0.0002" at 4 digits.
func FormatFixed(f float64, digits int) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	if len(frac) <= digits {
		frac += strings.Repeat("0", digits-len(frac))
		if digits == 0 {
			return sign + intPart
		}
		return sign + intPart + "." + frac
	}

	kept := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		i := len(kept) - 1
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i < 0 {
			kept = append([]byte{'1'}, kept...)
		} else {
			kept[i]++
		}
	}

	n := len(kept) - digits
	if digits == 0 {
		return sign + string(kept)
	}
	return sign + string(kept[:n]) + "." + string(kept[n:])
}
