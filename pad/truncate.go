package pad

import "fmt"

// TruncateRight shortens s to at most maxWidth display columns by
// removing from the end, splicing replacement in at the cut point.
// Strings already within maxWidth are returned unchanged.
func TruncateRight(s string, maxWidth int, replacement string) (string, error) {
	if maxWidth < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeWidth, maxWidth)
	}
	if fitsWidth(s, maxWidth) {
		return s, nil
	}
	budget := maxWidth - Width(replacement)
	return prefixOfWidth(s, budget) + replacement, nil
}

// TruncateLeft shortens s to at most maxWidth display columns by
// removing from the start, splicing replacement in at the cut point.
func TruncateLeft(s string, maxWidth int, replacement string) (string, error) {
	if maxWidth < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeWidth, maxWidth)
	}
	if fitsWidth(s, maxWidth) {
		return s, nil
	}
	budget := maxWidth - Width(replacement)
	cs, _ := clusters(s)
	start := len(s)
	kept := 0
	for i := len(cs) - 1; i >= 0; i-- {
		if kept+cs[i].width > budget {
			break
		}
		kept += cs[i].width
		start = cs[i].offset
	}
	return replacement + s[start:], nil
}

// TruncateCenter shortens s to at most maxWidth display columns by
// removing from the middle, splicing replacement in at the cut point.
// The removed span is kept as visually balanced as possible; when the
// post-replacement budget splits unevenly, the extra column goes to the
// left side when preferLeft is true, otherwise to the right.
func TruncateCenter(s string, maxWidth int, replacement string, preferLeft bool) (string, error) {
	if maxWidth < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeWidth, maxWidth)
	}
	if fitsWidth(s, maxWidth) {
		return s, nil
	}
	budget := maxWidth - Width(replacement)
	if budget <= 0 {
		return replacement, nil
	}

	leftTarget := budget / 2
	if preferLeft {
		leftTarget = budget - budget/2
	}

	cs, _ := clusters(s)
	// a: clusters kept on the left; b: first cluster kept on the right.
	a, leftKept := 0, 0
	for a < len(cs) && leftKept+cs[a].width <= leftTarget {
		leftKept += cs[a].width
		a++
	}
	b, rightKept := len(cs), 0
	for b > a && leftKept+rightKept+cs[b-1].width <= budget {
		b--
		rightKept += cs[b].width
	}
	// Redistribute any slack one side left unused until neither side
	// grows.
	for {
		grew := false
		for a < b && leftKept+rightKept+cs[a].width <= budget {
			leftKept += cs[a].width
			a++
			grew = true
		}
		for b > a && leftKept+rightKept+cs[b-1].width <= budget {
			b--
			rightKept += cs[b].width
			grew = true
		}
		if !grew {
			break
		}
	}

	cut := len(s)
	if b < len(cs) {
		cut = cs[b].offset
	}
	keep := len(s)
	if a < len(cs) {
		keep = cs[a].offset
	}
	return s[:keep] + replacement + s[cut:], nil
}
