// Package report renders the plain-text gradebook reports. It builds text
// only; writing it anywhere is the caller's job.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatAverage renders an average the way the reports print it: the
// shortest decimal form, always with a fractional part (27.0, 28.5, 29.33).
func FormatAverage(avg float64) string {
	s := strconv.FormatFloat(avg, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// padRight left-aligns s in a field of width runes.
func padRight(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > width {
			width = n
		}
	}
	return width
}
