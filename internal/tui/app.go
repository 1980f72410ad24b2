package tui

import (
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlundin/reel/internal/api"
)

// App is the root Bubbletea model. All mutable application state lives
// here and is touched only from Update; builders receive what they need as
// arguments and report back through messages.
type App struct {
	client  api.Backend
	theme   Theme
	display DisplayConfig

	width  int
	height int

	// Navigation state machine.
	current page
	nav     navState
	gen     uint64 // navigation generation; stale results are discarded
	status  string // persistent status line, cleared on navigate
	updated time.Time

	// Cached snapshots, fully replaced on each refresh, never patched.
	instanceCache []api.Instance
	siteCache     []api.Site

	// Per-page view state.
	dash      dashboardState
	instances instancesState
	torrents  torrentsState
	sites     sitesState
	speed     speedRulesState
	remove    removeRulesState
	logs      logsState
	settings  settingsState

	spinnerFrame int
	spinning     bool // a tick chain is live; never start a second one
	showHelp     bool
}

// navigateToMsg requests a navigation; Init uses it so the initial page
// load runs through the same path as every later one.
type navigateToMsg struct{ page page }

// NewApp creates the root model.
func NewApp(client api.Backend, display DisplayConfig, theme Theme) App {
	return App{
		client:  client,
		display: display,
		theme:   theme,
		current: pageDashboard,
	}
}

func (a App) Init() tea.Cmd {
	return func() tea.Msg { return navigateToMsg{page: pageDashboard} }
}

// navigate drives one pass of the state machine: record the target page,
// clear the status line, bump the generation, and dispatch the builder.
// A page without a builder renders an empty view instead of failing.
func (a *App) navigate(p page) tea.Cmd {
	a.current = p
	a.status = ""
	a.gen++
	cmd := a.buildPage(p, a.gen)
	if cmd == nil {
		a.nav = navRendered
		return nil
	}
	a.nav = navLoading
	return tea.Batch(cmd, a.startSpinner())
}

// startSpinner begins a tick chain, or returns nil when one is already
// running so overlapping loads never stack ticks.
func (a *App) startSpinner() tea.Cmd {
	if a.spinning {
		return nil
	}
	a.spinning = true
	return spinnerTick()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeViewports()
		return a, nil

	case navigateToMsg:
		return a, a.navigate(msg.page)

	case renavigateMsg:
		return a, a.navigate(a.current)

	case spinnerTickMsg:
		a.spinning = false
		if a.nav == navLoading || a.torrents.loading {
			a.spinnerFrame++
			return a, a.startSpinner()
		}
		return a, nil

	case pageDataMsg:
		if msg.gen != a.gen {
			return a, nil // stale navigation, a newer one won
		}
		a.commitPage(msg)
		a.nav = navRendered
		a.updated = time.Now()
		return a, nil

	case pageErrMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.nav = navFailed
		a.status = msg.err.Error()
		return a, nil

	case torrentTableMsg:
		return a, a.commitTorrentTable(msg)

	case torrentActionDoneMsg:
		st := &a.torrents
		a.status = ""
		st.loading = true
		st.tableGen++
		return a, tea.Batch(reloadTorrents(a.client, st.tableGen, msg.instanceID), a.startSpinner())

	case actionErrMsg:
		a.status = msg.err.Error()
		return a, nil

	case logoutDoneMsg:
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		return a, tea.Quit

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// commitPage stores a completed build into the page's state. Cache slices
// are replaced whole; instances and sites refresh their app-level snapshot.
func (a *App) commitPage(msg pageDataMsg) {
	switch msg.page {
	case pageDashboard:
		a.dash.stats = msg.data.(api.DashboardStats)
	case pageInstances:
		list := msg.data.([]api.Instance)
		a.instances.rows = list
		a.instances.cursor = clampCursor(a.instances.cursor, len(list))
		a.instanceCache = list
	case pageTorrents:
		d := msg.data.(torrentsPageData)
		st := &a.torrents
		st.instances = d.instances
		st.selected = d.selected
		st.rows = d.torrents
		st.cursor = clampCursor(st.cursor, len(d.torrents))
		st.loading = false
		if len(d.instances) > 0 {
			a.instanceCache = d.instances
		}
	case pageSites:
		list := msg.data.([]api.Site)
		a.sites.rows = list
		a.sites.cursor = clampCursor(a.sites.cursor, len(list))
		a.siteCache = list
	case pageSpeedRules:
		a.speed.rows = msg.data.([]api.SpeedRule)
		a.speed.cursor = clampCursor(a.speed.cursor, len(a.speed.rows))
	case pageRemoveRules:
		a.remove.rows = msg.data.([]api.RemoveRule)
		a.remove.cursor = clampCursor(a.remove.cursor, len(a.remove.rows))
	case pageLogs:
		a.logs.entries = msg.data.([]api.LogEntry)
		w, h := a.contentInnerDims()
		a.setLogsContent(w, h)
	case pageSettings:
		a.settings.raw = msg.data.(json.RawMessage)
		w, h := a.contentInnerDims()
		a.setSettingsContent(w, h)
	}
}

// commitTorrentTable applies a selector-scoped reload. The result is
// dropped unless its generation and instance still match the selection at
// commit time, so a slow fetch can never overwrite a newer one.
func (a *App) commitTorrentTable(msg torrentTableMsg) tea.Cmd {
	st := &a.torrents
	if msg.tableGen != st.tableGen {
		return nil
	}
	inst, ok := st.selectedInstance()
	if !ok || inst.ID != msg.instanceID {
		return nil
	}
	st.loading = false
	if msg.err != nil {
		st.rows = nil
		a.status = msg.err.Error()
		return nil
	}
	st.rows = msg.torrents
	st.cursor = clampCursor(st.cursor, len(msg.torrents))
	return nil
}

func logoutCmd(c api.Backend) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		return logoutDoneMsg{err: c.Logout(ctx)}
	}
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	if key == "?" {
		a.showHelp = true
		return a, nil
	}

	switch key {
	case "L":
		return a, logoutCmd(a.client)
	case "R":
		return a, a.navigate(a.current)
	case "tab":
		return a, a.navigate(a.nextPage())
	}

	// Number keys jump straight to a sidebar entry.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if p, ok := pageAt(int(key[0]-'1')); ok {
			return a, a.navigate(p)
		}
		return a, nil
	}

	// Row-level keys only make sense on a rendered page.
	if a.nav != navRendered {
		return a, nil
	}
	switch a.current {
	case pageInstances:
		return a, updateInstances(&a, msg)
	case pageTorrents:
		return a, updateTorrents(&a, msg)
	case pageSites:
		return a, updateSites(&a, msg)
	case pageSpeedRules:
		return a, updateSpeedRules(&a, msg)
	case pageRemoveRules:
		return a, updateRemoveRules(&a, msg)
	case pageLogs:
		return a, updateLogs(&a, msg)
	case pageSettings:
		return a, updateSettings(&a, msg)
	}
	return a, nil
}

// nextPage returns the sidebar entry after the current one, wrapping.
func (a *App) nextPage() page {
	for i, d := range pageList {
		if d.page == a.current {
			return pageList[(i+1)%len(pageList)].page
		}
	}
	return pageList[0].page
}

// contentInnerDims returns the drawable area inside the content panel.
func (a *App) contentInnerDims() (w, h int) {
	w = a.width - sidebarWidth - 2 // panel borders
	if w < 10 {
		w = 10
	}
	h = a.height - 1 - 2 // footer + borders
	if h < 3 {
		h = 3
	}
	return w, h
}

// visibleTableRows returns how many data rows the content region fits
// below the table header. Pages with extra chrome subtract their own lines.
func (a *App) visibleTableRows() int {
	_, h := a.contentInnerDims()
	v := h - 1
	if v < 1 {
		v = 1
	}
	return v
}

// resizeViewports refits the scrollable pages after a terminal resize.
func (a *App) resizeViewports() {
	w, h := a.contentInnerDims()
	if len(a.logs.entries) > 0 {
		a.setLogsContent(w, h)
	}
	if len(a.settings.raw) > 0 {
		a.setSettingsContent(w, h)
	}
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Connecting..."
	}

	contentH := a.height - 1 // footer line
	if contentH < 3 {
		contentH = 3
	}
	contentW := a.width - sidebarWidth
	innerW, innerH := a.contentInnerDims()

	var body string
	switch a.nav {
	case navLoading:
		body = SpinnerView(a.spinnerFrame, "Loading "+a.current.label()+"…", &a.theme, innerW, innerH)
	case navRendered:
		body = a.renderContent(innerW, innerH)
	default:
		// Idle before the first navigation, or Failed: the content region
		// stays empty and the status line carries the message.
		body = ""
	}

	sidebar := renderSidebar(a.current, &a.theme, contentH)
	content := Box(a.current.label(), body, contentW, contentH, &a.theme, true)
	row := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	if a.showHelp {
		row = lipgloss.JoinHorizontal(lipgloss.Top, sidebar,
			renderHelpModal(&a, contentW, contentH))
	}

	return row + "\n" + a.renderFooter()
}

// renderContent renders the current page body. Until a navigation has
// rendered, and after a failed one, the region stays empty; pages outside
// the enum have no renderer and also produce an empty region.
func (a *App) renderContent(width, height int) string {
	if a.nav != navRendered {
		return ""
	}
	switch a.current {
	case pageDashboard:
		return renderDashboard(a, width, height)
	case pageInstances:
		return renderInstances(a, width, height)
	case pageTorrents:
		return renderTorrents(a, width, height)
	case pageSites:
		return renderSites(a, width, height)
	case pageSpeedRules:
		return renderSpeedRules(a, width, height)
	case pageRemoveRules:
		return renderRemoveRules(a, width, height)
	case pageLogs:
		return renderLogs(a, width, height)
	case pageSettings:
		return renderSettings(a, width, height)
	default:
		return ""
	}
}

func (a *App) renderFooter() string {
	theme := &a.theme
	if a.status != "" {
		return TruncateStyled(" "+errStyle(theme).Render(a.status), a.width)
	}

	bindings := []helpBinding{
		{"1-8", "pages"},
		{"tab", "next"},
		{"R", "refresh"},
	}
	switch a.current {
	case pageInstances:
		bindings = append(bindings, helpBinding{"c", a.instances.toggleHint()})
	case pageTorrents:
		bindings = append(bindings,
			helpBinding{"h/l", "instance"},
			helpBinding{"p/r/d", "pause/resume/delete"},
		)
	}
	bindings = append(bindings, helpBinding{"?", "help"}, helpBinding{"q", "quit"})

	footer := " " + renderHelpBar(bindings, theme)
	if !a.updated.IsZero() {
		stamp := mutedStyle(theme).Render("updated " + a.updated.Format(a.display.TimeFormat))
		footer += "  " + stamp
	}
	return TruncateStyled(footer, a.width)
}
