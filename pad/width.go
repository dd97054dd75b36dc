// Package pad provides display-width-aware padding and truncation.
//
// Widths are measured in terminal columns, not bytes or code points:
// CJK and emoji occupy two columns, combining marks occupy none.
// Measurement is grapheme-aware, so multi-code-point clusters (ZWJ emoji
// sequences, combining accents) are counted once.
package pad

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthFunc measures the display width of a string in terminal columns.
// A WidthFunc must be consistent: the same input always yields the same
// width.
type WidthFunc func(string) int

// Width returns the grapheme-aware display width of s.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// RuneWidth returns the display width of a single code point.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Condition returns a WidthFunc honoring the East Asian ambiguous-width
// convention when eastAsian is true.
func Condition(eastAsian bool) WidthFunc {
	c := runewidth.NewCondition()
	c.EastAsianWidth = eastAsian
	return c.StringWidth
}

// cluster is one grapheme cluster boundary of a string.
type cluster struct {
	offset int // byte offset of the cluster start
	width  int // display width of the cluster
}

// clusters returns the grapheme cluster boundaries of s and the total
// display width.
func clusters(s string) ([]cluster, int) {
	var cs []cluster
	total := 0
	offset := 0
	state := -1
	for rest := s; len(rest) > 0; {
		var g string
		var w int
		g, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cs = append(cs, cluster{offset: offset, width: w})
		offset += len(g)
		total += w
	}
	return cs, total
}

// prefixOfWidth returns the longest prefix of s, on a grapheme boundary,
// whose display width does not exceed maxWidth.
func prefixOfWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	taken := 0
	total := 0
	state := -1
	for rest := s; len(rest) > 0; {
		var g string
		var w int
		g, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if total+w > maxWidth {
			break
		}
		total += w
		taken += len(g)
	}
	return s[:taken]
}

// fitsWidth reports whether the display width of s is at most maxWidth,
// scanning only until the running width exceeds it.
func fitsWidth(s string, maxWidth int) bool {
	total := 0
	state := -1
	for rest := s; len(rest) > 0; {
		var w int
		_, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		total += w
		if total > maxWidth {
			return false
		}
	}
	return true
}
