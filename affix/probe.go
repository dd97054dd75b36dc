package affix

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/dshills/textkit/match"
)

// HasPrefixReader reports whether the next bytes of r equal prefix
// without consuming them. A stream that ends before the prefix is
// exhausted compares unequal rather than failing. Other errors, including
// bufio.ErrBufferFull when the prefix exceeds the reader's buffer, are
// propagated.
func HasPrefixReader(r *bufio.Reader, prefix string) (bool, error) {
	if len(prefix) == 0 {
		return true, nil
	}
	buf, err := r.Peek(len(prefix))
	if len(buf) < len(prefix) {
		if err == nil || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return string(buf) == prefix, nil
}

// HasPrefixReaderMatch reports whether the next code point of r is
// accepted by m, without consuming it.
func HasPrefixReaderMatch(r *bufio.Reader, m match.Matcher) (bool, error) {
	buf, err := r.Peek(utf8.UTFMax)
	if len(buf) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return false, err
	}
	ch, _ := utf8.DecodeRune(buf)
	return m.Match(ch), nil
}
