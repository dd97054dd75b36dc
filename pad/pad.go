package pad

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrZeroWidthPad  = errors.New("pad text has zero display width")
	ErrNegativeWidth = errors.New("width must be non-negative")
)

// Left pads v on the left to the given display width using padText,
// stringifying v first. Values already at least that wide are returned
// unchanged.
func Left(v any, width int, padText string) (string, error) {
	s, fill, err := padFill(v, width, padText)
	if err != nil {
		return "", err
	}
	return fill + s, nil
}

// Right pads v on the right to the given display width using padText.
func Right(v any, width int, padText string) (string, error) {
	s, fill, err := padFill(v, width, padText)
	if err != nil {
		return "", err
	}
	return s + fill, nil
}

// padFill stringifies v and builds the pad filler covering the missing
// width: whole copies of padText plus a width-bounded partial tile.
func padFill(v any, width int, padText string) (s, filler string, err error) {
	if width < 0 {
		return "", "", fmt.Errorf("%w: %d", ErrNegativeWidth, width)
	}
	s = stringify(v)
	missing := width - Width(s)
	if missing <= 0 {
		return s, "", nil
	}
	unit := Width(padText)
	if unit == 0 {
		return "", "", fmt.Errorf("%w: %q", ErrZeroWidthPad, padText)
	}
	whole, rem := missing/unit, missing%unit
	var b strings.Builder
	b.Grow(whole*len(padText) + rem)
	for i := 0; i < whole; i++ {
		b.WriteString(padText)
	}
	b.WriteString(prefixOfWidth(padText, rem))
	return s, b.String(), nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
