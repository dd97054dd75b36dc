package match

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern locates matches inside a string. Offsets are byte offsets and
// from is expected to be a code point boundary; FindNext and FindPrev
// clamp out-of-range values instead of failing.
//
// A match may be zero-width (start == end); engines consuming patterns
// must force forward progress past zero-width matches themselves.
type Pattern interface {
	// FindNext returns the first match beginning at or after from.
	FindNext(s string, from int) (start, end int, ok bool)

	// FindPrev returns the last match beginning at or before from.
	FindPrev(s string, from int) (start, end int, ok bool)
}

// Literal matches an exact substring. The empty literal matches
// everywhere as a zero-width match.
type Literal string

// FindNext returns the first occurrence of the literal at or after from.
func (p Literal) FindNext(s string, from int) (int, int, bool) {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return 0, 0, false
	}
	idx := strings.Index(s[from:], string(p))
	if idx < 0 {
		return 0, 0, false
	}
	start := from + idx
	return start, start + len(p), true
}

// FindPrev returns the last occurrence of the literal starting at or
// before from.
func (p Literal) FindPrev(s string, from int) (int, int, bool) {
	if from < 0 {
		return 0, 0, false
	}
	limit := from + len(p)
	if len(p) == 0 {
		limit = from
	}
	if limit > len(s) {
		limit = len(s)
	}
	idx := strings.LastIndex(s[:limit], string(p))
	if idx < 0 || idx > from {
		return 0, 0, false
	}
	return idx, idx + len(p), true
}

// One matches a single code point accepted by a Matcher.
type One struct {
	M Matcher
}

// FindNext returns the first code point at or after from accepted by the
// matcher.
func (p One) FindNext(s string, from int) (int, int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if p.M.Match(r) {
			return i, i + size, true
		}
		i += size
	}
	return 0, 0, false
}

// FindPrev returns the last code point starting at or before from
// accepted by the matcher.
func (p One) FindPrev(s string, from int) (int, int, bool) {
	for i := lastStart(s, from); i >= 0; i = prevStart(s, i) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if p.M.Match(r) {
			return i, i + size, true
		}
	}
	return 0, 0, false
}

// Where matches a single code point accepted by an index-aware
// predicate. The predicate receives the byte offset of the code point.
type Where func(i int, r rune) bool

// FindNext returns the first code point at or after from accepted by the
// predicate.
func (p Where) FindNext(s string, from int) (int, int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if p(i, r) {
			return i, i + size, true
		}
		i += size
	}
	return 0, 0, false
}

// FindPrev returns the last code point starting at or before from
// accepted by the predicate.
func (p Where) FindPrev(s string, from int) (int, int, bool) {
	for i := lastStart(s, from); i >= 0; i = prevStart(s, i) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if p(i, r) {
			return i, i + size, true
		}
	}
	return 0, 0, false
}

// Regexp wraps a compiled regular expression as a Pattern. The expression
// is treated as opaque; anchors are interpreted relative to the search
// position, not the whole string.
type Regexp struct {
	Re *regexp.Regexp
}

// FindNext returns the leftmost regexp match beginning at or after from.
func (p Regexp) FindNext(s string, from int) (int, int, bool) {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return 0, 0, false
	}
	loc := p.Re.FindStringIndex(s[from:])
	if loc == nil {
		return 0, 0, false
	}
	return from + loc[0], from + loc[1], true
}

// FindPrev returns the last regexp match beginning at or before from.
// The regexp engine only searches forward, so this scans from the start
// and keeps the last qualifying match.
func (p Regexp) FindPrev(s string, from int) (int, int, bool) {
	bestStart, bestEnd, found := 0, 0, false
	at := 0
	for at <= len(s) {
		loc := p.Re.FindStringIndex(s[at:])
		if loc == nil {
			break
		}
		start, end := at+loc[0], at+loc[1]
		if start > from {
			break
		}
		bestStart, bestEnd, found = start, end, true
		if end == start {
			if start >= len(s) {
				break
			}
			_, size := utf8.DecodeRuneInString(s[start:])
			at = start + size
		} else {
			at = end
		}
	}
	return bestStart, bestEnd, found
}

// lastStart returns the start offset of the last code point beginning at
// or before from, or -1 if there is none.
func lastStart(s string, from int) int {
	if from > len(s)-1 {
		from = len(s) - 1
	}
	if from < 0 {
		return -1
	}
	for from > 0 && !utf8.RuneStart(s[from]) {
		from--
	}
	return from
}

// prevStart returns the start offset of the code point before the one at
// i, or -1 at the beginning of the string.
func prevStart(s string, i int) int {
	i--
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// Interface guards.
var (
	_ Pattern = Literal("")
	_ Pattern = One{}
	_ Pattern = Where(nil)
	_ Pattern = Regexp{}
)
