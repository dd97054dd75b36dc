// Package split provides lazy forward and reverse delimiter splitting.
//
// Each and EachReverse return single-use iterators yielding zero-copy
// views into the input; Split, RSplit, and Fields collect them eagerly.
// Reverse iterators yield fields right to left; RSplit re-orders the
// collected fields so both collectors return left-to-right results.
package split

import (
	"github.com/dshills/textkit/match"
	"github.com/dshills/textkit/text"
)

type options struct {
	limit     int
	keepEmpty bool
}

// Option configures a split.
type Option func(*options)

// Limit caps the number of fields produced. The final field carries the
// unsplit remainder. n <= 0 means unbounded.
func Limit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// DropEmpty discards empty fields instead of emitting them. Empty fields
// are kept by default when splitting on an explicit pattern.
func DropEmpty() Option {
	return func(o *options) {
		o.keepEmpty = false
	}
}

// Iterator yields successive fields of a forward split, strictly left to
// right. It is single-use; create a new Iterator to rescan.
type Iterator struct {
	s         string
	p         match.Pattern
	limit     int
	keepEmpty bool
	segStart  int // start of the pending field
	cursor    int // scan position for the next pattern search
	emitted   int
	field     string
	done      bool
}

// Each returns a lazy iterator over the fields of s split around matches
// of p.
func Each(s string, p match.Pattern, opts ...Option) *Iterator {
	o := options{keepEmpty: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Iterator{s: s, p: p, limit: o.limit, keepEmpty: o.keepEmpty}
}

// Next advances to the next field.
// Returns true if there is a field, false if iteration is complete.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	for {
		if it.limit > 0 && it.emitted == it.limit-1 {
			break
		}
		st, en, ok := it.p.FindNext(it.s, it.cursor)
		if !ok || st >= len(it.s) {
			break
		}
		next := en
		if en <= st {
			// Zero-width match: force progress past one code point.
			next = text.NextBoundary(it.s, st)
		}
		if it.segStart < en {
			emit := it.keepEmpty || it.segStart < st
			field := it.s[it.segStart:st]
			it.segStart = en
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
	if it.keepEmpty || it.segStart < len(it.s) {
		it.field = it.s[it.segStart:]
		it.emitted++
		return true
	}
	return false
}

// Field returns the current field.
func (it *Iterator) Field() string {
	return it.field
}

// Split splits s around matches of p and returns the fields in order.
func Split(s string, p match.Pattern, opts ...Option) []string {
	var out []string
	for it := Each(s, p, opts...); it.Next(); {
		out = append(out, it.Field())
	}
	return out
}

// Fields splits s around runs of Unicode whitespace, dropping empty
// fields.
func Fields(s string) []string {
	return Split(s, match.One{M: match.Whitespace}, DropEmpty())
}
