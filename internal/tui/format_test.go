package tui

import "testing"

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1, "1.00 B"},
		{512, "512.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1024 * 1024, "1.00 MiB"},
		{5 * 1024 * 1024 * 1024, "5.00 GiB"},
		{1024 * 1024 * 1024 * 1024, "1.00 TiB"},
		// Beyond TiB the unit list is exhausted; value keeps growing.
		{2048 * 1024 * 1024 * 1024 * 1024, "2048.00 TiB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSpeed(t *testing.T) {
	for _, n := range []int64{0, 1023, 1536, 1024 * 1024} {
		if got, want := FormatSpeed(n), FormatBytes(n)+"/s"; got != want {
			t.Errorf("FormatSpeed(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, c := range cases {
		if got := Truncate(c.in, c.maxLen); got != c.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", c.in, c.maxLen, got, c.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m plain"
	if got := stripANSI(styled); got != "red plain" {
		t.Errorf("stripANSI = %q, want %q", got, "red plain")
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("ab", 5); got != "ab   " {
		t.Errorf("padCell short = %q", got)
	}
	if got := padCell("abcdef", 4); got != "abc…" {
		t.Errorf("padCell long = %q", got)
	}
}

func TestRightAlign(t *testing.T) {
	if got := rightAlign("42", 5); got != "   42" {
		t.Errorf("rightAlign = %q", got)
	}
	if got := rightAlign("123456", 4); got != "123456" {
		t.Errorf("rightAlign overflow = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("abcdefgh", 3)
	want := []string{"abc", "def", "gh"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText: got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
