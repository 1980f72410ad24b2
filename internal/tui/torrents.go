package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlundin/reel/internal/api"
)

// torrentsState holds the instance selector and the inner torrent table.
// The table has its own reload generation so a selector change refreshes
// only the table region, never the whole page.
type torrentsState struct {
	instances []api.Instance
	selected  int
	rows      []api.Torrent
	cursor    int
	scroll    int
	tableGen  uint64
	loading   bool
}

// selectedInstance returns the instance the table is scoped to.
func (st *torrentsState) selectedInstance() (api.Instance, bool) {
	if st.selected < 0 || st.selected >= len(st.instances) {
		return api.Instance{}, false
	}
	return st.instances[st.selected], true
}

// torrentsPageData is the full-page build result.
type torrentsPageData struct {
	instances []api.Instance
	selected  int
	torrents  []api.Torrent
}

// torrentTableMsg is a selector-scoped partial reload result. Stale
// generations and results for a no-longer-selected instance are discarded
// at commit time.
type torrentTableMsg struct {
	tableGen   uint64
	instanceID int64
	torrents   []api.Torrent
	err        error
}

type torrentActionDoneMsg struct{ instanceID int64 }

// fetchTorrentsPage builds the whole page: the instance list comes from the
// cached snapshot when available, otherwise a fresh fetch replaces it.
func fetchTorrentsPage(c api.Backend, gen uint64, cached []api.Instance, selected int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()

		instances := cached
		if len(instances) == 0 {
			var err error
			instances, err = c.Instances(ctx)
			if err != nil {
				return pageErrMsg{gen: gen, page: pageTorrents, err: err}
			}
		}
		if len(instances) == 0 {
			return pageDataMsg{gen: gen, page: pageTorrents, data: torrentsPageData{}}
		}
		if selected < 0 || selected >= len(instances) {
			selected = 0
		}
		torrents, err := c.Torrents(ctx, instances[selected].ID)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageTorrents, err: err}
		}
		return pageDataMsg{gen: gen, page: pageTorrents, data: torrentsPageData{
			instances: instances,
			selected:  selected,
			torrents:  torrents,
		}}
	}
}

// reloadTorrents refreshes only the torrent table for one instance.
func reloadTorrents(c api.Backend, tableGen uint64, instanceID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		torrents, err := c.Torrents(ctx, instanceID)
		return torrentTableMsg{tableGen: tableGen, instanceID: instanceID, torrents: torrents, err: err}
	}
}

// torrentActionCmd issues a row action. Delete uses the DELETE endpoint;
// pause/resume are POST commands. Success reloads the same instance's table.
func torrentActionCmd(c api.Backend, instanceID int64, hash, action string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		var err error
		switch action {
		case "pause":
			err = c.PauseTorrent(ctx, instanceID, hash)
		case "resume":
			err = c.ResumeTorrent(ctx, instanceID, hash)
		case "delete":
			err = c.DeleteTorrent(ctx, instanceID, hash)
		default:
			return nil
		}
		if err != nil {
			return actionErrMsg{err: err}
		}
		return torrentActionDoneMsg{instanceID: instanceID}
	}
}

// selectInstance moves the selector by delta and kicks off a table-only
// reload for the newly selected instance.
func (a *App) selectInstance(delta int) tea.Cmd {
	st := &a.torrents
	if len(st.instances) == 0 {
		return nil
	}
	next := st.selected + delta
	if next < 0 {
		next = len(st.instances) - 1
	}
	if next >= len(st.instances) {
		next = 0
	}
	if next == st.selected {
		return nil
	}
	st.selected = next
	st.cursor = 0
	st.scroll = 0
	st.loading = true
	st.tableGen++
	return tea.Batch(reloadTorrents(a.client, st.tableGen, st.instances[next].ID), a.startSpinner())
}

func updateTorrents(a *App, msg tea.KeyMsg) tea.Cmd {
	st := &a.torrents
	switch msg.String() {
	case "h", "left":
		return a.selectInstance(-1)
	case "l", "right":
		return a.selectInstance(1)
	case "j", "down":
		st.cursor = clampCursor(st.cursor+1, len(st.rows))
		// selector + blank line sit above the table
		st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows()-2)
	case "k", "up":
		st.cursor = clampCursor(st.cursor-1, len(st.rows))
		st.scroll = scrollTo(st.cursor, st.scroll, a.visibleTableRows()-2)
	case "p":
		return a.torrentRowAction("pause")
	case "r":
		return a.torrentRowAction("resume")
	case "d":
		return a.torrentRowAction("delete")
	}
	return nil
}

func (a *App) torrentRowAction(action string) tea.Cmd {
	st := &a.torrents
	inst, ok := st.selectedInstance()
	if !ok || st.cursor >= len(st.rows) {
		return nil
	}
	return torrentActionCmd(a.client, inst.ID, st.rows[st.cursor].Hash, action)
}

var torrentColumns = []column{
	{title: "NAME", width: 0},
	{title: "SIZE", width: 11, right: true},
	{title: "UP", width: 12, right: true},
	{title: "DL", width: 12, right: true},
	{title: "STATE", width: 12},
}

// torrentCells maps one torrent to its styled table cells.
func torrentCells(t api.Torrent, theme *Theme) []string {
	state := lipgloss.NewStyle().Foreground(theme.StateColor(t.State)).Render(t.State)
	return []string{
		t.Name,
		FormatBytes(t.Size),
		FormatSpeed(t.UpSpeed),
		FormatSpeed(t.DlSpeed),
		state,
	}
}

// renderSelector renders the instance selector line above the table.
func renderSelector(st *torrentsState, theme *Theme, innerW int) string {
	inst, ok := st.selectedInstance()
	if !ok {
		return ""
	}
	dim := mutedStyle(theme)
	name := fgStyle(theme).Bold(true).Render(inst.Label())
	pos := dim.Render(fmt.Sprintf("(%d/%d)", st.selected+1, len(st.instances)))
	line := " " + dim.Render("Instance:") + " " + dim.Render("◀") + " " + name + " " + dim.Render("▶") + "  " + pos
	return TruncateStyled(line, innerW)
}

func renderTorrents(a *App, width, height int) string {
	st := &a.torrents
	theme := &a.theme

	if len(st.instances) == 0 {
		return "\n  No instances available — add one on the Instances page"
	}

	selector := renderSelector(st, theme, width)

	tableH := height - 2 // selector + blank line
	if tableH < 2 {
		tableH = 2
	}

	if st.loading {
		return selector + "\n\n" + SpinnerView(a.spinnerFrame, "Loading torrents…", theme, width, tableH)
	}

	if len(st.rows) == 0 {
		return selector + "\n\n  No torrents on this instance"
	}

	rows := make([][]string, len(st.rows))
	for i, t := range st.rows {
		rows[i] = torrentCells(t, theme)
	}

	cursor := clampCursor(st.cursor, len(rows))
	scroll := scrollTo(cursor, st.scroll, tableH-1)

	lines := renderTable(torrentColumns, rows, cursor, scroll, width, tableH, theme, true)
	return selector + "\n\n" + joinLines(lines)
}
