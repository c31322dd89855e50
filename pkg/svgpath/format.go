package svgpath

import (
	"math"
	"strconv"
)

// Decimals is the number of decimal places FormatNumber keeps.
const Decimals = 6

var roundFactor = math.Pow(10, Decimals)

// FormatNumber rounds n to Decimals places and renders it without trailing
// zeros, so floating point noise like 2.9999999 comes out as "3". Infinite
// and NaN values have no path data form and come out as "0".
func FormatNumber(n float64) string {
	if !isFinite(n) {
		return "0"
	}
	r := math.Round(n*roundFactor) / roundFactor
	if !isFinite(r) {
		// Too large to round; there are no decimals left anyway.
		r = n
	}
	if r == 0 {
		// Drop the sign of negative zero.
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ParseNumber parses a plain number, reporting whether it succeeded.
func ParseNumber(n string) (float64, bool) {
	s := &state{data: n}
	s.whitespace()
	v, err := s.parseNumber()
	if err != nil {
		return 0, false
	}
	s.whitespace()
	return v, s.index == len(s.data)
}

func isFinite(n float64) bool {
	return !math.IsInf(n, 0) && !math.IsNaN(n)
}
