package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/timewinder-dev/rpn/vm"
)

// FormatNumber renders f the way results are shown to users: Infinity,
// -Infinity and NaN are spelled out, everything else is decimal. A negative
// precision means the shortest representation that round-trips.
func FormatNumber(f float64, precision int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	if precision >= 0 {
		return strconv.FormatFloat(f, 'f', precision, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return trimExponent(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent, so 1e-07 reads 1e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// FormatValue formats a vm.Value for display
func FormatValue(v vm.Value) string {
	switch val := v.(type) {
	case vm.NumberValue:
		return FormatNumber(float64(val), -1)
	case vm.RefValue:
		return FormatNumber(val.Number, -1)
	case vm.NameValue:
		return string(val)
	case vm.NoneValue:
		return "None"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// FormatStack renders a stack bottom first, e.g. [1 2 x].
func FormatStack(s *Stack) string {
	vals := s.Values()
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		switch val := v.(type) {
		case vm.RefValue:
			parts = append(parts, fmt.Sprintf("%s(%s)", val.Name, FormatNumber(val.Number, -1)))
		default:
			parts = append(parts, FormatValue(v))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
