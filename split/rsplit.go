package split

import (
	"github.com/dshills/textkit/match"
	"github.com/dshills/textkit/text"
)

// RIterator yields successive fields of a reverse split, strictly right
// to left. It is single-use; create a new RIterator to rescan.
type RIterator struct {
	s         string
	p         match.Pattern
	limit     int
	keepEmpty bool
	segEnd    int // end (exclusive) of the pending field
	cursor    int // max allowed match end for the next pattern search
	emitted   int
	field     string
	done      bool
}

// EachReverse returns a lazy iterator over the fields of s split around
// matches of p, yielding the rightmost field first.
func EachReverse(s string, p match.Pattern, opts ...Option) *RIterator {
	o := options{keepEmpty: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &RIterator{s: s, p: p, limit: o.limit, keepEmpty: o.keepEmpty, segEnd: len(s), cursor: len(s)}
}

// Next advances to the next field.
// Returns true if there is a field, false if iteration is complete.
func (it *RIterator) Next() bool {
	if it.done {
		return false
	}
	for {
		if it.limit > 0 && it.emitted == it.limit-1 {
			break
		}
		st, en, ok := findPrevWithin(it.p, it.s, it.cursor)
		if !ok || en <= 0 {
			break
		}
		next := st
		if st >= it.cursor {
			// Zero-width match at the scan bound: step back one code
			// point so the scan can resume left of it.
			next = text.PrevBoundary(it.s, it.cursor)
		}
		if it.segEnd > st {
			emit := it.keepEmpty || en < it.segEnd
			field := it.s[en:it.segEnd]
			it.segEnd = st
			it.cursor = next
			if emit {
				it.emitted++
				it.field = field
				return true
			}
			continue
		}
		it.cursor = next
	}
	it.done = true
	if it.keepEmpty || it.segEnd > 0 {
		it.field = it.s[:it.segEnd]
		it.emitted++
		return true
	}
	return false
}

// Field returns the current field.
func (it *RIterator) Field() string {
	return it.field
}

// RSplit splits s around matches of p scanning from the end, returning
// the fields in left-to-right order.
func RSplit(s string, p match.Pattern, opts ...Option) []string {
	var out []string
	for it := EachReverse(s, p, opts...); it.Next(); {
		out = append(out, it.Field())
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// findPrevWithin returns the last match of p whose end does not exceed
// bound.
func findPrevWithin(p match.Pattern, s string, bound int) (int, int, bool) {
	from := bound
	for from >= 0 {
		st, en, ok := p.FindPrev(s, from)
		if !ok {
			return 0, 0, false
		}
		if en <= bound {
			return st, en, true
		}
		from = st - 1
	}
	return 0, 0, false
}
