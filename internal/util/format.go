package util

import (
	"strconv"
	"time"
)

// FormatNumber renders n with thousands separators for log and stats lines.
func FormatNumber(n uint64) string {
	s := strconv.FormatUint(n, 10)

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	return s
}

// FormatSeconds renders a duration as seconds with at most six significant
// digits and no trailing zeros, the form the timing report uses.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}
