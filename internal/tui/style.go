package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared style constructors.

func mutedStyle(t *Theme) lipgloss.Style  { return lipgloss.NewStyle().Foreground(t.FgDim) }
func accentStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Accent) }
func fgStyle(t *Theme) lipgloss.Style     { return lipgloss.NewStyle().Foreground(t.Fg) }
func errStyle(t *Theme) lipgloss.Style    { return lipgloss.NewStyle().Foreground(t.Critical) }

// cursorRow highlights a row as the cursor selection using Reverse.
func cursorRow(row string, w int) string {
	return lipgloss.NewStyle().Reverse(true).Render(Truncate(stripANSI(row), w))
}

// helpBinding describes a key-label pair for the footer help bar.
type helpBinding struct{ Key, Label string }

// renderHelpBar renders a help bar from key-label bindings.
func renderHelpBar(bindings []helpBinding, t *Theme) string {
	dim := mutedStyle(t)
	bright := fgStyle(t)

	var parts []string
	for _, b := range bindings {
		parts = append(parts, bright.Render(b.Key)+" "+dim.Render(b.Label))
	}
	return strings.Join(parts, "  ")
}
