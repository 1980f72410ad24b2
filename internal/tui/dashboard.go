package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlundin/reel/internal/api"
)

// dashboardState holds the last loaded statistics snapshot.
type dashboardState struct {
	stats api.DashboardStats
}

func fetchDashboard(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		stats, err := c.Dashboard(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageDashboard, err: err}
		}
		return pageDataMsg{gen: gen, page: pageDashboard, data: *stats}
	}
}

// statCard is one dashboard tile: a label plus a formatted value.
type statCard struct {
	label string
	value string
}

// dashboardCards builds the six fixed statistic cards. Absent backend
// fields are zero values, so each card formats cleanly without guards.
func dashboardCards(s api.DashboardStats) []statCard {
	return []statCard{
		{"Upload Speed", FormatSpeed(s.UpSpeed)},
		{"Download Speed", FormatSpeed(s.DlSpeed)},
		{"Active Torrents", itoa(s.ActiveCount)},
		{"Total Uploaded", FormatBytes(s.TotalUploaded)},
		{"Active Limits", itoa(s.ActiveLimits)},
		{"Removed", itoa(s.TotalRemoved)},
	}
}

func renderDashboard(a *App, width, height int) string {
	cards := dashboardCards(a.dash.stats)

	perRow := 3
	cardW := width / perRow
	if cardW < 16 {
		perRow = 2
		cardW = width / perRow
	}
	cardH := 5

	value := lipgloss.NewStyle().Foreground(a.theme.FgBright).Bold(true)
	label := mutedStyle(&a.theme)

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		var boxes []string
		for _, c := range cards[start:end] {
			inner := centerText(value.Render(c.value), cardW-2) + "\n" +
				centerText(label.Render(c.label), cardW-2)
			boxes = append(boxes, Box("", "\n"+inner, cardW, cardH, &a.theme))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
