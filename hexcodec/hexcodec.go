// Package hexcodec converts between byte slices and hexadecimal text.
//
// Decoding is case-insensitive; encoding always emits lowercase. All
// validation happens before any output is produced, and decode errors
// carry the offset of the offending input byte.
package hexcodec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrOddLength      = errors.New("hex input has odd length")
	ErrLengthMismatch = errors.New("destination must be half the source length")
)

// InvalidByteError reports a non-hex-digit input byte and its offset.
type InvalidByteError struct {
	Offset int
	Byte   byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid hex byte %q at offset %d", e.Byte, e.Offset)
}

const digits = "0123456789abcdef"

// Decode converts a string of hex digit pairs into a new byte slice.
// The input length must be even; the empty input decodes to an empty
// slice.
func Decode(src string) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddLength, len(src))
	}
	dst := make([]byte, len(src)/2)
	if err := decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeInto decodes src into dst, requiring len(dst)*2 == len(src).
// A zero-length src with an empty dst is a valid no-op. On error dst is
// left unmodified.
func DecodeInto(dst []byte, src string) error {
	if len(src)%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddLength, len(src))
	}
	if len(dst)*2 != len(src) {
		return fmt.Errorf("%w: len(dst)=%d len(src)=%d", ErrLengthMismatch, len(dst), len(src))
	}
	return decode(dst, src)
}

// decode validates every digit of src before writing anything, so dst is
// untouched when an error is returned.
func decode(dst []byte, src string) error {
	for i := 0; i < len(src); i++ {
		if _, ok := fromHexChar(src[i]); !ok {
			return &InvalidByteError{Offset: i, Byte: src[i]}
		}
	}
	for i := 0; i < len(src); i += 2 {
		hi, _ := fromHexChar(src[i])
		lo, _ := fromHexChar(src[i+1])
		dst[i/2] = hi<<4 | lo
	}
	return nil
}

// Encode returns the lowercase hex encoding of b, twice its length.
func Encode(b []byte) string {
	dst := make([]byte, 0, len(b)*2)
	for _, c := range b {
		dst = append(dst, digits[c>>4], digits[c&0x0f])
	}
	return string(dst)
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
