package bytecode

import (
	"math"
	"strconv"
	"strings"
)

// Value is the VM's operand type. It is a defined type rather than a bare
// float64 so the slot can later grow into a tagged union (bool, nil, string,
// object) without reshaping the execution loop.
type Value float64

// String renders a value the way results are printed: zero is "0", very large
// or very small magnitudes use scientific notation with six fractional digits,
// everything else is fixed-point with six digits and trailing zeros (and a
// trailing dot) trimmed.
func (v Value) String() string {
	f := float64(v)
	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e6 || abs < 1e-4 {
		return strconv.FormatFloat(f, 'e', 6, 64)
	}

	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
