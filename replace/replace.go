// Package replace implements ordered multi-pattern, single-pass text
// replacement.
//
// The input is scanned once, left to right. At each step the rule whose
// pending match starts earliest is applied; on ties the rule listed
// first wins. Zero-width matches insert their replacement and the scan
// is forced forward one code point so it always terminates.
package replace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/textkit/match"
	"github.com/dshills/textkit/text"
)

// ErrNegativeCount reports a negative replacement limit.
var ErrNegativeCount = errors.New("replacement count must be non-negative")

// Rule pairs a pattern with its replacement.
type Rule struct {
	Pattern match.Pattern

	// With is the literal replacement text. Ignored when Func is set.
	With string

	// Func, when non-nil, computes the replacement from the matched
	// text. For One and Where patterns the matched text is the single
	// matched code point.
	Func func(matched string) string
}

// Lit builds a rule replacing matches of p with the literal text.
func Lit(p match.Pattern, with string) Rule {
	return Rule{Pattern: p, With: with}
}

// Fn builds a rule replacing matches of p with the result of f applied
// to the matched text.
func Fn(p match.Pattern, f func(matched string) string) Rule {
	return Rule{Pattern: p, Func: f}
}

type options struct {
	limit    int
	limitSet bool
}

// Option configures a replacement pass.
type Option func(*options)

// Limit caps the number of replacements applied; the remainder of the
// input is copied unchanged. A limit of 0 makes the pass a plain copy.
// Negative limits are rejected.
func Limit(n int) Option {
	return func(o *options) {
		o.limit = n
		o.limitSet = true
	}
}

// Apply rewrites s by applying the rules in a single left-to-right pass
// and returns the result.
func Apply(s string, rules []Rule, opts ...Option) (string, error) {
	var b strings.Builder
	// Heuristic pre-size; replacements usually grow output a little.
	b.Grow(len(s) + len(s)/5)
	if err := run(&b, s, rules, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// AppendTo streams the rewritten s into w without materializing the
// whole result.
func AppendTo(w io.Writer, s string, rules []Rule, opts ...Option) error {
	return run(w, s, rules, opts)
}

func run(w io.Writer, s string, rules []Rule, opts []Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.limitSet && o.limit < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, o.limit)
	}
	if o.limitSet && o.limit == 0 {
		_, err := io.WriteString(w, s)
		return err
	}

	// Pending match per rule: starts[i] < 0 means exhausted.
	starts := make([]int, len(rules))
	ends := make([]int, len(rules))
	for i, rule := range rules {
		starts[i] = -1
		if st, en, ok := rule.Pattern.FindNext(s, 0); ok {
			starts[i], ends[i] = st, en
		}
	}

	cursor := 0
	applied := 0
	for {
		best := -1
		for i := range rules {
			if starts[i] < 0 {
				continue
			}
			if best < 0 || starts[i] < starts[best] {
				best = i
			}
		}
		if best < 0 {
			break
		}
		st, en := starts[best], ends[best]
		if _, err := io.WriteString(w, s[cursor:st]); err != nil {
			return err
		}
		rep := rules[best].With
		if rules[best].Func != nil {
			rep = rules[best].Func(s[st:en])
		}
		if _, err := io.WriteString(w, rep); err != nil {
			return err
		}
		cursor = en
		if en == st {
			// Zero-width match: copy one code point to force progress.
			if st >= len(s) {
				cursor = st
				applied++
				break
			}
			next := text.NextBoundary(s, st)
			if _, err := io.WriteString(w, s[st:next]); err != nil {
				return err
			}
			cursor = next
		}
		applied++
		if o.limitSet && applied >= o.limit {
			break
		}
		// Re-scan only the rules whose pending match fell behind.
		for i, rule := range rules {
			if starts[i] < 0 || starts[i] >= cursor {
				continue
			}
			starts[i] = -1
			if st, en, ok := rule.Pattern.FindNext(s, cursor); ok {
				starts[i], ends[i] = st, en
			}
		}
	}
	_, err := io.WriteString(w, s[cursor:])
	return err
}
