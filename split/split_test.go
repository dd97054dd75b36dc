package split

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
	"testing/quick"

	"github.com/dshills/textkit/match"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		s    string
		sep  string
		opts []Option
		want []string
	}{
		{"basic", "Ma.rch", ".", nil, []string{"Ma", "rch"}},
		{"multiple", "a,b,c", ",", nil, []string{"a", "b", "c"}},
		{"keeps empty by default", ",a,", ",", nil, []string{"", "a", ""}},
		{"adjacent separators", "a,,b", ",", nil, []string{"a", "", "b"}},
		{"drop empty", ",a,,b,", ",", []Option{DropEmpty()}, []string{"a", "b"}},
		{"no separator", "abc", ",", nil, []string{"abc"}},
		{"empty input", "", ",", nil, []string{""}},
		{"empty input drop empty", "", ",", []Option{DropEmpty()}, nil},
		{"limit 2", "a,b,c", ",", []Option{Limit(2)}, []string{"a", "b,c"}},
		{"limit 1", "a,b,c", ",", []Option{Limit(1)}, []string{"a,b,c"}},
		{"limit beyond fields", "a,b", ",", []Option{Limit(5)}, []string{"a", "b"}},
		{"empty pattern", "abc", "", nil, []string{"a", "b", "c"}},
		{"multibyte separator", "a世b世c", "世", nil, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.s, match.Literal(tt.sep), tt.opts...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q, %q) = %v, want %v", tt.s, tt.sep, got, tt.want)
			}
		})
	}
}

func TestSplitMatcher(t *testing.T) {
	got := Split("a-b_c", match.One{M: match.Cutset("-_")})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitRegexp(t *testing.T) {
	p := match.Regexp{Re: regexp.MustCompile(`\s*,\s*`)}
	got := Split("a , b,c ,d", p)
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []string
	}{
		{"basic", "foo bar baz", []string{"foo", "bar", "baz"}},
		{"runs of whitespace", "  foo \t bar\n", []string{"foo", "bar"}},
		{"only whitespace", " \t\n", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fields(tt.s); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestEachLazy(t *testing.T) {
	it := Each("a,b,c", match.Literal(","))
	var got []string
	for it.Next() {
		got = append(got, it.Field())
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
	if it.Next() {
		t.Error("exhausted iterator should stay exhausted")
	}
}

func TestSplitJoinInverse(t *testing.T) {
	f := func(s string) bool {
		fields := Split(s, match.Literal(","))
		return strings.Join(fields, ",") == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func FuzzSplitJoin(f *testing.F) {
	f.Add("a,b,c")
	f.Add(",,")
	f.Add("")
	f.Add("世,界")
	f.Fuzz(func(t *testing.T, s string) {
		fields := Split(s, match.Literal(","))
		if got := strings.Join(fields, ","); got != s {
			t.Errorf("join(split(%q)) = %q", s, got)
		}
	})
}
