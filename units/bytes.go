package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const byteSuffixes = " KMGTPE"

// ParseBytes converts a numeral with an optional binary suffix (K, M, G, T,
// P, E for 2^10 .. 2^60) to a byte count.  No suffix means bytes.  The
// literal "16?" is a known artifact of some sacct versions and parses to
// zero, as does anything else that does not scan.
func ParseBytes(s string) float64 {
	if s == "" || s == "16?" {
		return 0
	}
	mult := 1.0
	if i := strings.IndexByte(byteSuffixes[1:], s[len(s)-1]); i >= 0 {
		mult = math.Pow(2, float64(10*(i+1)))
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n * mult
}

// FormatBytes renders a byte count with two decimals and the largest suffix
// that keeps the scaled value at or above one; the no-suffix case carries a
// space so byte columns stay aligned.
func FormatBytes(v float64) string {
	e := int(math.Log2(v+1) / 10)
	if e >= len(byteSuffixes) {
		e = len(byteSuffixes) - 1
	}
	return fmt.Sprintf("%.2f%c", v/math.Pow(2, float64(10*e)), byteSuffixes[e])
}
