// Package text provides code-point navigation over immutable UTF-8 strings.
//
// Go strings are immutable byte sequences, and substrings share the backing
// array of the string they were sliced from: every substring is a zero-copy
// view that stays valid for as long as any reference to it exists. The rest
// of textkit leans on that property: trim and split results are views into
// the input, never copies.
//
// This package supplies the navigation primitives those operations build
// on: validated byte access, next/previous valid-index stepping, forward
// and reverse rune iterators, boundary checks, and strict ASCII validation.
// All offsets are byte offsets; a boundary is a byte offset at which a code
// point starts (or len(s), the end boundary).
package text
