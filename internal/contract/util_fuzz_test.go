package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseWindowDays checks that every accepted window is a positive day count.
func FuzzParseWindowDays(f *testing.F) {
	for _, seed := range []string{"30 days", "2 weeks", "1 month", "48h", "36 hours", "0 days", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		days, err := ParseWindowDays(input)
		if err == nil && days < 1 {
			t.Fatalf("ParseWindowDays(%q) = %d", input, days)
		}
	})
}

// FuzzTruncate checks that truncation never grows a string past its width.
func FuzzTruncate(f *testing.F) {
	f.Add("a much longer subject line", 10)
	f.Add("héllo", 4)
	f.Fuzz(func(t *testing.T, s string, width int) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		out := Truncate(s, width)
		if width > 3 && utf8.RuneCountInString(out) > width {
			t.Fatalf("Truncate(%q, %d) = %q", s, width, out)
		}
	})
}
