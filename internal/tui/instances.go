package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tlundin/reel/internal/api"
)

// instancesState holds the instance table: rows, cursor, scroll.
type instancesState struct {
	rows   []api.Instance
	cursor int
	scroll int
}

func fetchInstances(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		list, err := c.Instances(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageInstances, err: err}
		}
		return pageDataMsg{gen: gen, page: pageInstances, data: list}
	}
}

// toggleInstanceCmd issues the connect/disconnect command for one instance.
// Success triggers a full re-navigation so the table reflects backend state;
// failure only reaches the status line.
func toggleInstanceCmd(c api.Backend, id int64, connect bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		if err := c.ToggleInstance(ctx, id, connect); err != nil {
			return actionErrMsg{err: err}
		}
		return renavigateMsg{}
	}
}

func updateInstances(a *App, msg tea.KeyMsg) tea.Cmd {
	st := &a.instances
	switch msg.String() {
	case "j", "down":
		st.cursor = clampCursor(st.cursor+1, len(st.rows))
	case "k", "up":
		st.cursor = clampCursor(st.cursor-1, len(st.rows))
	case "c", "enter":
		if st.cursor < len(st.rows) {
			inst := st.rows[st.cursor]
			return toggleInstanceCmd(a.client, inst.ID, !inst.Connected)
		}
	}
	st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows())
	return nil
}

var instanceColumns = []column{
	{title: "ID", width: 4, right: true},
	{title: "NAME", width: 0},
	{title: "HOST", width: 24},
	{title: "STATE", width: 14},
	{title: "ENABLED", width: 7},
}

// instanceCells maps one instance to its styled table cells.
func instanceCells(inst api.Instance, theme *Theme) []string {
	state := inst.Connected
	label := "disconnected"
	if state {
		label = "connected"
	}
	return []string{
		itoa(inst.ID),
		inst.Label(),
		inst.Host,
		theme.ConnIndicator(state) + " " + label,
		theme.EnabledMark(inst.Enabled),
	}
}

func renderInstances(a *App, width, height int) string {
	st := &a.instances
	theme := &a.theme

	if len(st.rows) == 0 {
		return "\n  No instances configured"
	}

	rows := make([][]string, len(st.rows))
	for i, inst := range st.rows {
		rows[i] = instanceCells(inst, theme)
	}

	cursor := clampCursor(st.cursor, len(rows))
	scroll := scrollTo(cursor, st.scroll, height-1)

	lines := renderTable(instanceColumns, rows, cursor, scroll, width, height, theme, true)
	return joinLines(lines)
}

// toggleHint returns the action hint for the selected instance, matching
// its current connection state.
func (st *instancesState) toggleHint() string {
	if st.cursor < len(st.rows) && st.rows[st.cursor].Connected {
		return "disconnect"
	}
	return "connect"
}
