package text

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Common errors.
var (
	ErrOutOfRange  = errors.New("byte offset out of range")
	ErrNotBoundary = errors.New("byte offset is not a code point boundary")
)

// NotASCIIError reports the first non-ASCII byte found during strict
// ASCII validation.
type NotASCIIError struct {
	Offset int
	Byte   byte
}

func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("non-ASCII byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// ByteAt returns the byte at offset i, validating bounds.
func ByteAt(s string, i int) (byte, error) {
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s))
	}
	return s[i], nil
}

// IsBoundary reports whether i falls on a code point boundary of s.
// Both 0 and len(s) are boundaries.
func IsBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}

// RuneAt decodes the code point starting at offset i and returns it with
// its byte size. i must be a code point boundary inside s.
func RuneAt(s string, i int) (rune, int, error) {
	if i < 0 || i >= len(s) {
		return 0, 0, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s))
	}
	if !utf8.RuneStart(s[i]) {
		return 0, 0, fmt.Errorf("%w: %d", ErrNotBoundary, i)
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	return r, size, nil
}

// NextIndex returns the byte offset of the code point following the one
// that starts at i. The result may equal len(s).
func NextIndex(s string, i int) (int, error) {
	_, size, err := RuneAt(s, i)
	if err != nil {
		return 0, err
	}
	return i + size, nil
}

// PrevIndex returns the byte offset of the code point preceding offset i.
// i must be a boundary in (0, len(s)].
func PrevIndex(s string, i int) (int, error) {
	if i <= 0 || i > len(s) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s))
	}
	if !IsBoundary(s, i) {
		return 0, fmt.Errorf("%w: %d", ErrNotBoundary, i)
	}
	return PrevBoundary(s, i), nil
}

// NextBoundary returns the smallest code point boundary greater than i,
// clamped to len(s). Unlike NextIndex it never fails; i may point into
// the middle of a code point.
func NextBoundary(s string, i int) int {
	if i < 0 {
		return 0
	}
	i++
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	if i > len(s) {
		return len(s)
	}
	return i
}

// PrevBoundary returns the largest code point boundary less than i,
// clamped to 0. Unlike PrevIndex it never fails.
func PrevBoundary(s string, i int) int {
	if i > len(s) {
		i = len(s)
	}
	i--
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i < 0 {
		return 0
	}
	return i
}

// First returns the first code point of s. ok is false for the empty
// string.
func First(s string) (r rune, ok bool) {
	if s == "" {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s)
	return r, true
}

// Last returns the final code point of s. ok is false for the empty
// string.
func Last(s string) (r rune, ok bool) {
	if s == "" {
		return 0, false
	}
	r, _ = utf8.DecodeLastRuneInString(s)
	return r, true
}

// ASCII verifies that s contains only ASCII bytes and returns it
// unchanged. The error reports the offset of the first offending byte.
func ASCII(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return "", &NotASCIIError{Offset: i, Byte: s[i]}
		}
	}
	return s, nil
}
