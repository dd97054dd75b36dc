// Package trim removes characters from the ends of UTF-8 strings.
//
// Every function returns a substring of its input, a zero-copy view
// sharing the input's backing array, and never errors: trimming
// something that is not there is a no-op.
package trim

import (
	"strings"

	"github.com/dshills/textkit/affix"
	"github.com/dshills/textkit/match"
	"github.com/dshills/textkit/text"
)

// Chop returns s without its final code point.
func Chop(s string) string {
	return ChopEnds(s, 0, 1)
}

// ChopEnds returns a view of s skipping head code points from the start
// and tail code points from the end. If s has fewer than head+tail code
// points the result is empty. Negative counts are treated as zero.
func ChopEnds(s string, head, tail int) string {
	start := 0
	for ; head > 0 && start < len(s); head-- {
		start = text.NextBoundary(s, start)
	}
	end := len(s)
	for ; tail > 0 && end > start; tail-- {
		end = text.PrevBoundary(s, end)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// ChopPrefix returns s without the leading prefix, or s unchanged when
// the prefix is absent. The empty prefix is a no-op.
func ChopPrefix(s, prefix string) string {
	if prefix != "" && affix.HasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// ChopSuffix returns s without the trailing suffix, or s unchanged when
// the suffix is absent. The empty suffix is a no-op.
func ChopSuffix(s, suffix string) string {
	if suffix != "" && affix.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

// Chomp removes at most one trailing line terminator, where a terminator
// is "\r\n" or "\n". A lone "\r" is not a terminator.
func Chomp(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}

// LStrip returns s without leading code points accepted by m.
func LStrip(s string, m match.Matcher) string {
	it := text.Runes(s)
	for it.Next() {
		if !m.Match(it.Rune()) {
			return s[it.Offset():]
		}
	}
	return ""
}

// RStrip returns s without trailing code points accepted by m.
func RStrip(s string, m match.Matcher) string {
	it := text.ReverseRunes(s)
	for it.Next() {
		if !m.Match(it.Rune()) {
			return s[:it.Offset()+it.Size()]
		}
	}
	return ""
}

// Strip returns s without leading and trailing code points accepted by m.
func Strip(s string, m match.Matcher) string {
	return LStrip(RStrip(s, m), m)
}

// LStripSpace trims leading Unicode whitespace.
func LStripSpace(s string) string {
	return LStrip(s, match.Whitespace)
}

// RStripSpace trims trailing Unicode whitespace.
func RStripSpace(s string) string {
	return RStrip(s, match.Whitespace)
}

// StripSpace trims Unicode whitespace from both ends.
func StripSpace(s string) string {
	return Strip(s, match.Whitespace)
}
