package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box renders a bordered panel with a title using rounded Unicode corners.
// Content is padded to fill width×height (including borders). A focused
// panel gets an accent-colored border.
func Box(title, content string, width, height int, theme *Theme, focused ...bool) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	borderColor := theme.Border
	if len(focused) > 0 && focused[0] {
		borderColor = theme.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	innerW := width - 2 // subtract left+right border chars

	// Top border with embedded title.
	var top string
	if title != "" {
		titleStr := " " + title + " "
		titleLen := lipgloss.Width(titleStr)
		if titleLen > innerW-2 {
			titleStr = Truncate(titleStr, innerW-2)
			titleLen = lipgloss.Width(titleStr)
		}
		styled := titleStyle.Render(titleStr)
		trailing := innerW - 1 - titleLen
		if trailing < 0 {
			trailing = 0
		}
		top = borderStyle.Render("╭─") + styled + borderStyle.Render(strings.Repeat("─", trailing)+"╮")
	} else {
		top = borderStyle.Render("╭" + strings.Repeat("─", innerW) + "╮")
	}

	lines := strings.Split(content, "\n")
	innerH := height - 2 // subtract top+bottom borders
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	for _, line := range lines {
		lineW := lipgloss.Width(line)
		pad := innerW - lineW
		if pad < 0 {
			line = TruncateStyled(line, innerW)
			pad = innerW - lipgloss.Width(line)
			if pad < 0 {
				pad = 0
			}
		}
		b.WriteString(borderStyle.Render("│"))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(borderStyle.Render("│"))
		b.WriteByte('\n')
	}
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerW) + "╯"))

	return b.String()
}
