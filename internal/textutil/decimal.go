package textutil

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds value to the given number of decimal places.
func Round(value float64, places int) float64 {
	if places < 0 {
		return value
	}
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// FormatDecimal renders value in its shortest exact form while always keeping
// a fractional part, so 3 prints as "3.0" and 33.33 as "33.33". It never
// switches to exponent notation, so magnitudes of 1e16 and above or below
// 1e-4 print as long plain decimals. Report percentages and averages stay
// well inside that range.
func FormatDecimal(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
