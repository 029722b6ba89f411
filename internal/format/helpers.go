package format

import (
	"fmt"
	"strconv"
)

// Fixed formats v with six decimals, the precision used for sizes and ratios.
func Fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Sci formats v in scientific notation with six significant decimals.
func Sci(v float64) string {
	return strconv.FormatFloat(v, 'e', 6, 64)
}

// Percent formats a fraction as a percentage, e.g. 0.0123 -> "1.2301%".
func Percent(v float64) string {
	return fmt.Sprintf("%.4f%%", v*100)
}

// OptionalSci formats *v with Sci, or "n/a" when v is nil.
func OptionalSci(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return Sci(*v)
}

// BoolMark returns "yes" for true and "no" for false.
func BoolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
