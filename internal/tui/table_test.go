package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTableLayoutFlexColumn(t *testing.T) {
	cols := []column{
		{title: "ID", width: 4, right: true},
		{title: "NAME", width: 0},
		{title: "STATE", width: 10},
	}
	widths := tableLayout(cols, 60)
	if widths[0] != 4 || widths[2] != 10 {
		t.Errorf("fixed widths = %v", widths)
	}
	// 60 - (4+2) - (10+2) - 1 leading space = 41
	if widths[1] != 41 {
		t.Errorf("flex width = %d, want 41", widths[1])
	}
}

func TestTableLayoutFlexMinimum(t *testing.T) {
	cols := []column{
		{title: "A", width: 30},
		{title: "B", width: 0},
	}
	widths := tableLayout(cols, 20)
	if widths[1] != 4 {
		t.Errorf("flex floor = %d, want 4", widths[1])
	}
}

func TestRenderTableCursorAndScroll(t *testing.T) {
	cols := []column{{title: "N", width: 6}}
	rows := [][]string{{"one"}, {"two"}, {"three"}, {"four"}}

	theme := TerminalTheme()
	// Header + 2 data rows; scrolled past the first row.
	lines := renderTable(cols, rows, 2, 1, 20, 3, &theme, true)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(stripANSI(lines[0]), "N") {
		t.Error("header missing")
	}
	if !strings.Contains(stripANSI(lines[1]), "two") {
		t.Errorf("first visible row = %q, want two", stripANSI(lines[1]))
	}
	if !strings.Contains(stripANSI(lines[2]), "three") {
		t.Errorf("cursor row = %q, want three", stripANSI(lines[2]))
	}
}

func TestFitCellStyledWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("ok")
	cell := fitCell(styled, 6, false)
	if lipgloss.Width(cell) != 6 {
		t.Errorf("styled cell width = %d, want 6", lipgloss.Width(cell))
	}
	if got := fitCell("42", 5, true); stripANSI(got) != "   42" {
		t.Errorf("right-aligned cell = %q", got)
	}
}

func TestScrollTo(t *testing.T) {
	cases := []struct {
		cursor, scroll, visible, want int
	}{
		{0, 0, 5, 0},
		{4, 0, 5, 0},  // still in window
		{5, 0, 5, 1},  // scrolled past bottom
		{2, 4, 5, 2},  // cursor above window
		{10, 0, 5, 6}, // far jump down
	}
	for _, c := range cases {
		if got := scrollTo(c.cursor, c.scroll, c.visible); got != c.want {
			t.Errorf("scrollTo(%d, %d, %d) = %d, want %d", c.cursor, c.scroll, c.visible, got, c.want)
		}
	}
}

func TestClampCursor(t *testing.T) {
	if got := clampCursor(5, 3); got != 2 {
		t.Errorf("clampCursor(5, 3) = %d", got)
	}
	if got := clampCursor(-1, 3); got != 0 {
		t.Errorf("clampCursor(-1, 3) = %d", got)
	}
	if got := clampCursor(2, 0); got != 0 {
		t.Errorf("clampCursor(2, 0) = %d", got)
	}
}

func TestBoxDimensions(t *testing.T) {
	theme := TerminalTheme()
	out := Box("title", "hello", 30, 6, &theme)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	if !strings.Contains(stripANSI(lines[0]), "title") {
		t.Error("title missing from top border")
	}
}

func TestBoxTruncatesWideContent(t *testing.T) {
	theme := TerminalTheme()
	out := Box("", strings.Repeat("x", 100), 20, 3, &theme)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}
