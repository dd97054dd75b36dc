// Package match defines rune matchers and searchable patterns.
//
// A Matcher answers whether a single code point matches; a Pattern
// locates matches inside a string. Trim, split, and replace all consume
// these two types, so a delimiter or trim set built once works with every
// engine.
package match

import "unicode"

// Matcher reports whether a single code point matches.
type Matcher interface {
	Match(r rune) bool
}

// Char matches exactly one code point.
type Char rune

// Match reports whether r equals the matcher's code point.
func (c Char) Match(r rune) bool {
	return rune(c) == r
}

// Set matches membership in a finite set of code points.
type Set struct {
	runes map[rune]struct{}
}

// NewSet builds a Set from the given code points.
func NewSet(runes ...rune) Set {
	m := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		m[r] = struct{}{}
	}
	return Set{runes: m}
}

// Cutset builds a Set from the code points of s. Turning a string into a
// trim set is always this explicit; strip functions never reinterpret a
// string argument as a set themselves.
func Cutset(s string) Set {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return Set{runes: m}
}

// Match reports whether r is a member of the set.
func (s Set) Match(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

// Len returns the number of code points in the set.
func (s Set) Len() int {
	return len(s.runes)
}

// Func adapts a predicate function to a Matcher.
type Func func(r rune) bool

// Match reports whether the predicate accepts r.
func (f Func) Match(r rune) bool {
	return f(r)
}

// Whitespace matches Unicode whitespace and separator characters. It is
// the default trim and split predicate.
var Whitespace Matcher = Func(unicode.IsSpace)

// Interface guards.
var (
	_ Matcher = Char(0)
	_ Matcher = Set{}
	_ Matcher = Func(nil)
)
