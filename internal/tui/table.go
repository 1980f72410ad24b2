package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// column describes one table column. Width 0 marks the flex column that
// absorbs whatever space the fixed columns leave over; at most one column
// per table should be flex.
type column struct {
	title string
	width int
	right bool // right-align (numeric) cells
}

// tableLayout resolves column pixel widths for a given inner width.
func tableLayout(cols []column, innerW int) []int {
	widths := make([]int, len(cols))
	fixed := 0
	flexIdx := -1
	for i, c := range cols {
		if c.width == 0 {
			flexIdx = i
			continue
		}
		widths[i] = c.width
		fixed += c.width + 2 // 2-space gutter
	}
	if flexIdx >= 0 {
		w := innerW - fixed - 1 // leading space
		if w < 4 {
			w = 4
		}
		widths[flexIdx] = w
	}
	return widths
}

// renderTable renders a column header plus row cells into lines of innerW
// width. Rows hold one pre-styled cell per column; the cursor row is shown
// reversed when the table is focused. Scroll is the index of the first
// visible row.
func renderTable(cols []column, rows [][]string, cursor, scroll, innerW, innerH int, theme *Theme, focused bool) []string {
	widths := tableLayout(cols, innerW)
	muted := mutedStyle(theme)

	headerCells := make([]string, len(cols))
	for i, c := range cols {
		if c.right {
			headerCells[i] = rightAlign(c.title, widths[i])
		} else {
			headerCells[i] = padCell(c.title, widths[i])
		}
	}
	lines := []string{muted.Render(" " + strings.Join(headerCells, "  "))}

	dataH := innerH - 1
	if dataH < 1 {
		dataH = 1
	}
	start := scroll
	if start > len(rows) {
		start = len(rows)
	}
	end := start + dataH
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		cells := make([]string, len(cols))
		for j := range cols {
			cell := ""
			if j < len(rows[i]) {
				cell = rows[i][j]
			}
			cells[j] = fitCell(cell, widths[j], cols[j].right)
		}
		row := " " + strings.Join(cells, "  ")
		if focused && i == cursor {
			row = cursorRow(row, innerW)
		}
		lines = append(lines, TruncateStyled(row, innerW))
	}
	return lines
}

// fitCell pads or truncates a possibly styled cell to the column width.
func fitCell(cell string, w int, right bool) string {
	cw := lipgloss.Width(cell)
	switch {
	case cw > w:
		return TruncateStyled(cell, w)
	case right:
		return strings.Repeat(" ", w-cw) + cell
	default:
		return cell + strings.Repeat(" ", w-cw)
	}
}

// scrollTo keeps cursor visible within a window of visible rows, returning
// the adjusted scroll offset.
func scrollTo(cursor, scroll, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+visible {
		return cursor - visible + 1
	}
	return scroll
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// clampCursor keeps a cursor within [0, n).
func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
