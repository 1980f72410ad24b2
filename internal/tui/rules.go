package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlundin/reel/internal/api"
)

// speedRulesState holds the read-only speed-rule table.
type speedRulesState struct {
	rows   []api.SpeedRule
	cursor int
	scroll int
}

// removeRulesState holds the read-only removal-rule table.
type removeRulesState struct {
	rows   []api.RemoveRule
	cursor int
	scroll int
}

func fetchSpeedRules(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		list, err := c.SpeedRules(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageSpeedRules, err: err}
		}
		return pageDataMsg{gen: gen, page: pageSpeedRules, data: list}
	}
}

func fetchRemoveRules(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		list, err := c.RemoveRules(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageRemoveRules, err: err}
		}
		return pageDataMsg{gen: gen, page: pageRemoveRules, data: list}
	}
}

func updateSpeedRules(a *App, msg tea.KeyMsg) tea.Cmd {
	st := &a.speed
	switch msg.String() {
	case "j", "down":
		st.cursor = clampCursor(st.cursor+1, len(st.rows))
	case "k", "up":
		st.cursor = clampCursor(st.cursor-1, len(st.rows))
	}
	st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows())
	return nil
}

func updateRemoveRules(a *App, msg tea.KeyMsg) tea.Cmd {
	st := &a.remove
	switch msg.String() {
	case "j", "down":
		st.cursor = clampCursor(st.cursor+1, len(st.rows))
	case "k", "up":
		st.cursor = clampCursor(st.cursor-1, len(st.rows))
	}
	st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows())
	return nil
}

var speedRuleColumns = []column{
	{title: "ID", width: 4, right: true},
	{title: "NAME", width: 0},
	{title: "SITE", width: 6, right: true},
	{title: "TARGET", width: 12, right: true},
	{title: "STATUS", width: 10},
}

// speedRuleStatus renders the enabled/active pair as one colored label.
func speedRuleStatus(r api.SpeedRule, theme *Theme) string {
	switch {
	case !r.Enabled:
		return mutedStyle(theme).Render("disabled")
	case r.Active:
		return lipgloss.NewStyle().Foreground(theme.Healthy).Render("active")
	default:
		return fgStyle(theme).Render("idle")
	}
}

func renderSpeedRules(a *App, width, height int) string {
	st := &a.speed
	theme := &a.theme

	if len(st.rows) == 0 {
		return "\n  No speed rules configured"
	}

	rows := make([][]string, len(st.rows))
	for i, r := range st.rows {
		site := "-"
		if r.SiteID != 0 {
			site = itoa(r.SiteID)
		}
		rows[i] = []string{
			itoa(r.ID),
			r.Name,
			site,
			FormatSpeed(r.TargetKiB * 1024),
			speedRuleStatus(r, theme),
		}
	}

	cursor := clampCursor(st.cursor, len(rows))
	scroll := scrollTo(cursor, st.scroll, height-1)

	return joinLines(renderTable(speedRuleColumns, rows, cursor, scroll, width, height, theme, true))
}

var removeRuleColumns = []column{
	{title: "ID", width: 4, right: true},
	{title: "NAME", width: 20},
	{title: "CONDITION", width: 0},
	{title: "REMOVED", width: 7, right: true},
	{title: "ENABLED", width: 7},
}

func renderRemoveRules(a *App, width, height int) string {
	st := &a.remove
	theme := &a.theme

	if len(st.rows) == 0 {
		return "\n  No remove rules configured"
	}

	rows := make([][]string, len(st.rows))
	for i, r := range st.rows {
		rows[i] = []string{
			itoa(r.ID),
			r.Name,
			r.Condition,
			itoa(r.Removed),
			theme.EnabledMark(r.Enabled),
		}
	}

	cursor := clampCursor(st.cursor, len(rows))
	scroll := scrollTo(cursor, st.scroll, height-1)

	return joinLines(renderTable(removeRuleColumns, rows, cursor, scroll, width, height, theme, true))
}
