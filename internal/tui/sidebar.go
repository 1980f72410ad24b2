package tui

import (
	"fmt"
	"strings"
)

const sidebarWidth = 20

// renderSidebar renders the static page list with exactly one active marker.
// The list itself never changes; only the marker follows current.
func renderSidebar(current page, theme *Theme, height int) string {
	accent := accentStyle(theme).Bold(true)
	dim := mutedStyle(theme)
	innerW := sidebarWidth - 2

	var lines []string
	for i, d := range pageList {
		num := dim.Render(fmt.Sprintf("%d", i+1))
		label := d.label
		if d.page == current {
			row := accent.Render("▸ " + label)
			lines = append(lines, TruncateStyled(" "+num+" "+row, innerW))
			continue
		}
		lines = append(lines, TruncateStyled(" "+num+" "+fgStyle(theme).Render("  "+label), innerW))
	}

	return Box("reel", strings.Join(lines, "\n"), sidebarWidth, height, theme)
}

// pageAt maps a sidebar ordinal (0-based) to its page.
func pageAt(idx int) (page, bool) {
	if idx < 0 || idx >= len(pageList) {
		return 0, false
	}
	return pageList[idx].page, true
}
