// Package affix provides prefix, suffix, and containment predicates over
// UTF-8 strings, along with curried predicate factories for filtering
// collections of strings.
package affix

import (
	"strings"

	wildcard "github.com/tidwall/match"

	"github.com/dshills/textkit/match"
	"github.com/dshills/textkit/text"
)

// HasPrefix reports whether s begins with prefix. The comparison is
// byte-exact, then the prefix boundary is validated against s so that a
// prefix ending in a partial multi-byte character never matches.
func HasPrefix(s, prefix string) bool {
	if len(prefix) == 0 {
		return true
	}
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return false
	}
	return text.IsBoundary(s, len(prefix))
}

// HasSuffix reports whether s ends with suffix, rejecting matches whose
// start would fall inside a multi-byte character of s.
func HasSuffix(s, suffix string) bool {
	offset := len(s) - len(suffix)
	if offset < 0 {
		return false
	}
	if s[offset:] != suffix {
		return false
	}
	return text.IsBoundary(s, offset)
}

// HasPrefixMatch reports whether s is non-empty and its first code point
// is accepted by m.
func HasPrefixMatch(s string, m match.Matcher) bool {
	r, ok := text.First(s)
	return ok && m.Match(r)
}

// HasSuffixMatch reports whether s is non-empty and its final code point
// is accepted by m.
func HasSuffixMatch(s string, m match.Matcher) bool {
	r, ok := text.Last(s)
	return ok && m.Match(r)
}

// Contains reports whether substr occurs within s.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// ContainsMatch reports whether any code point of s is accepted by m.
func ContainsMatch(s string, m match.Matcher) bool {
	_, _, ok := match.One{M: m}.FindNext(s, 0)
	return ok
}

// ContainsPattern reports whether p matches anywhere in s.
func ContainsPattern(s string, p match.Pattern) bool {
	_, _, ok := p.FindNext(s, 0)
	return ok
}

// Prefix returns a predicate reporting whether its argument begins with
// prefix.
func Prefix(prefix string) func(string) bool {
	return func(s string) bool {
		return HasPrefix(s, prefix)
	}
}

// Suffix returns a predicate reporting whether its argument ends with
// suffix.
func Suffix(suffix string) func(string) bool {
	return func(s string) bool {
		return HasSuffix(s, suffix)
	}
}

// Wildcard returns a predicate matching whole strings against a pattern
// with '*' and '?' wildcards.
func Wildcard(pattern string) func(string) bool {
	return func(s string) bool {
		return wildcard.Match(s, pattern)
	}
}
