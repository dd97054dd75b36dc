package text

import "unicode/utf8"

// Iterator iterates over the code points of a string from the start.
// Iterators are single-use; create a new one to rescan.
type Iterator struct {
	s       string
	offset  int
	current rune
	size    int
	started bool
}

// Runes returns an iterator over the code points of s.
func Runes(s string) *Iterator {
	return &Iterator{s: s}
}

// Next advances to the next code point.
// Returns true if there is a code point, false if iteration is complete.
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
	} else {
		it.offset += it.size
	}
	if it.offset >= len(it.s) {
		it.size = 0
		return false
	}
	it.current, it.size = utf8.DecodeRuneInString(it.s[it.offset:])
	return true
}

// Rune returns the current code point.
func (it *Iterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current code point.
func (it *Iterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the current code point.
func (it *Iterator) Offset() int {
	return it.offset
}

// ReverseIterator iterates over the code points of a string from the end.
type ReverseIterator struct {
	s       string
	offset  int
	current rune
	size    int
}

// ReverseRunes returns an iterator over the code points of s in reverse
// order.
func ReverseRunes(s string) *ReverseIterator {
	return &ReverseIterator{s: s, offset: len(s)}
}

// Next moves to the previous code point (advances the reverse iteration).
// Returns true if there is a code point, false if iteration is complete.
func (it *ReverseIterator) Next() bool {
	if it.offset == 0 {
		return false
	}
	it.offset = PrevBoundary(it.s, it.offset)
	it.current, it.size = utf8.DecodeRuneInString(it.s[it.offset:])
	return it.size > 0
}

// Rune returns the current code point.
func (it *ReverseIterator) Rune() rune {
	return it.current
}

// Size returns the byte size of the current code point.
func (it *ReverseIterator) Size() int {
	return it.size
}

// Offset returns the byte offset of the current code point.
func (it *ReverseIterator) Offset() int {
	return it.offset
}
