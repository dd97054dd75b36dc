package trim

import (
	"testing"
	"testing/quick"

	"github.com/dshills/textkit/match"
)

func TestChop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "March", "Marc"},
		{"single char", "x", ""},
		{"empty", "", ""},
		{"multibyte last", "a世", "a"},
		{"emoji last", "ab🍕", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chop(tt.input); got != tt.want {
				t.Errorf("Chop(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestChopEnds(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		head, tail int
		want       string
	}{
		{"head only", "Hamburger", 3, 0, "burger"},
		{"both ends", "Hamburger", 3, 2, "burg"},
		{"too short", "ab", 2, 1, ""},
		{"exact length", "abc", 1, 2, ""},
		{"zero zero", "abc", 0, 0, "abc"},
		{"negative counts", "abc", -1, -1, "abc"},
		{"multibyte", "世界平和", 1, 1, "界平"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChopEnds(tt.input, tt.head, tt.tail); got != tt.want {
				t.Errorf("ChopEnds(%q, %d, %d) = %q, want %q", tt.input, tt.head, tt.tail, got, tt.want)
			}
		})
	}
}

func TestChopPrefix(t *testing.T) {
	tests := []struct {
		name      string
		s, prefix string
		want      string
	}{
		{"present", "Hamburger", "Ham", "burger"},
		{"absent", "Hamburger", "hotdog", "Hamburger"},
		{"empty prefix", "Hamburger", "", "Hamburger"},
		{"whole string", "Ham", "Ham", ""},
		{"only once", "aab", "a", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChopPrefix(tt.s, tt.prefix); got != tt.want {
				t.Errorf("ChopPrefix(%q, %q) = %q, want %q", tt.s, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestChopSuffix(t *testing.T) {
	tests := []struct {
		name      string
		s, suffix string
		want      string
	}{
		{"present", "main.go", ".go", "main"},
		{"absent", "main.go", ".rs", "main.go"},
		{"empty suffix", "main.go", "", "main.go"},
		{"only once", "baa", "a", "ba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChopSuffix(tt.s, tt.suffix); got != tt.want {
				t.Errorf("ChopSuffix(%q, %q) = %q, want %q", tt.s, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestChomp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lf", "hello\n", "hello"},
		{"crlf", "hello\r\n", "hello"},
		{"lone cr kept", "hello\r", "hello\r"},
		{"at most one", "a\n\n", "a\n"},
		{"no terminator", "hello", "hello"},
		{"empty", "", ""},
		{"only newline", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chomp(tt.input); got != tt.want {
				t.Errorf("Chomp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "  hello  ", "hello"},
		{"tabs and newlines", "\t\nhi\r\n ", "hi"},
		{"all whitespace", "   ", ""},
		{"none", "hello", "hello"},
		{"unicode space", " hi ", "hi"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripSpace(tt.input); got != tt.want {
				t.Errorf("StripSpace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripSides(t *testing.T) {
	if got := LStripSpace("  ab  "); got != "ab  " {
		t.Errorf("LStripSpace = %q, want %q", got, "ab  ")
	}
	if got := RStripSpace("  ab  "); got != "  ab" {
		t.Errorf("RStripSpace = %q, want %q", got, "  ab")
	}
}

func TestStripCutset(t *testing.T) {
	xy := match.Cutset("xy")
	if got := Strip("xyabcyx", xy); got != "abc" {
		t.Errorf("Strip cutset = %q, want %q", got, "abc")
	}
	if got := LStrip("xyabcyx", xy); got != "abcyx" {
		t.Errorf("LStrip cutset = %q, want %q", got, "abcyx")
	}
	if got := RStrip("xyabcyx", xy); got != "xyabc" {
		t.Errorf("RStrip cutset = %q, want %q", got, "xyabc")
	}
}

func TestStripIdempotent(t *testing.T) {
	f := func(s string) bool {
		once := StripSpace(s)
		return StripSpace(once) == once
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
