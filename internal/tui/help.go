package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpModal renders the help overlay for the current page.
func renderHelpModal(a *App, width, height int) string {
	theme := &a.theme
	fg := fgStyle(theme)
	dim := mutedStyle(theme)

	type binding struct{ key, desc string }
	bindings := []binding{
		{"1-8", "jump to page"},
		{"tab", "next page"},
		{"R", "refresh page"},
		{"j/k", "move cursor / scroll"},
	}

	switch a.current {
	case pageInstances:
		bindings = append(bindings, binding{"c/enter", "connect or disconnect"})
	case pageTorrents:
		bindings = append(bindings,
			binding{"h/l", "switch instance"},
			binding{"p", "pause torrent"},
			binding{"r", "resume torrent"},
			binding{"d", "delete torrent"},
		)
	}

	bindings = append(bindings,
		binding{"L", "log out"},
		binding{"q", "quit"},
	)

	const keyW = 10
	var lines []string
	lines = append(lines, "")
	for _, b := range bindings {
		key := b.key
		for len(key) < keyW {
			key += " "
		}
		lines = append(lines, "  "+fg.Render(key)+dim.Render(b.desc))
	}
	lines = append(lines, "")
	lines = append(lines, "  "+dim.Render("esc close"))

	content := strings.Join(lines, "\n")
	modalW := 40
	if modalW > width-4 {
		modalW = width - 4
	}
	modalH := len(lines) + 2
	if modalH > height-2 {
		modalH = height - 2
	}
	modal := Box("help", content, modalW, modalH, theme)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}
