package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tlundin/reel/internal/api"
)

// sitesState holds the read-only site table.
type sitesState struct {
	rows   []api.Site
	cursor int
	scroll int
}

func fetchSites(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		list, err := c.Sites(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageSites, err: err}
		}
		return pageDataMsg{gen: gen, page: pageSites, data: list}
	}
}

func updateSites(a *App, msg tea.KeyMsg) tea.Cmd {
	st := &a.sites
	switch msg.String() {
	case "j", "down":
		st.cursor = clampCursor(st.cursor+1, len(st.rows))
	case "k", "up":
		st.cursor = clampCursor(st.cursor-1, len(st.rows))
	}
	st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows())
	return nil
}

var siteColumns = []column{
	{title: "ID", width: 4, right: true},
	{title: "NAME", width: 0},
	{title: "DOMAIN", width: 30},
	{title: "ENABLED", width: 7},
}

func renderSites(a *App, width, height int) string {
	st := &a.sites
	theme := &a.theme

	if len(st.rows) == 0 {
		return "\n  No sites configured"
	}

	rows := make([][]string, len(st.rows))
	for i, s := range st.rows {
		rows[i] = []string{itoa(s.ID), s.Name, s.Domain, theme.EnabledMark(s.Enabled)}
	}

	cursor := clampCursor(st.cursor, len(rows))
	scroll := scrollTo(cursor, st.scroll, height-1)

	return joinLines(renderTable(siteColumns, rows, cursor, scroll, width, height, theme, true))
}
