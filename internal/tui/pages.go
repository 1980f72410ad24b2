package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// page is the closed set of navigable pages. Keeping this an enum (rather
// than a string-keyed registry) means the builder dispatch in buildPage is
// exhaustive and a page without a handler cannot compile in unnoticed.
type page int

const (
	pageDashboard page = iota
	pageInstances
	pageTorrents
	pageSites
	pageSpeedRules
	pageRemoveRules
	pageLogs
	pageSettings
)

// pageDescriptor pairs a page with its sidebar label. One descriptor per
// page, defined once; the sidebar and the content title both read from it.
type pageDescriptor struct {
	page  page
	label string
}

// pageList drives the sidebar in display order.
var pageList = [...]pageDescriptor{
	{pageDashboard, "Dashboard"},
	{pageInstances, "Instances"},
	{pageTorrents, "Torrents"},
	{pageSites, "Sites"},
	{pageSpeedRules, "Speed Rules"},
	{pageRemoveRules, "Remove Rules"},
	{pageLogs, "Logs"},
	{pageSettings, "Settings"},
}

// label returns the descriptor label, or "" for a page with no descriptor.
func (p page) label() string {
	for _, d := range pageList {
		if d.page == p {
			return d.label
		}
	}
	return ""
}

// navState is the navigation state machine: Idle until the first navigate,
// then Loading -> Rendered|Failed on every navigation, re-entrant.
type navState int

const (
	navIdle navState = iota
	navLoading
	navRendered
	navFailed
)

const fetchTimeout = 10 * time.Second

// fetchContext is the per-command request context used by page builders
// and row actions.
func fetchContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fetchTimeout)
}

// pageDataMsg carries a completed page build. Results whose gen no longer
// matches the app's navigation generation are discarded as stale.
type pageDataMsg struct {
	gen  uint64
	page page
	data any
}

// pageErrMsg carries a failed page build (initial-load error).
type pageErrMsg struct {
	gen  uint64
	page page
	err  error
}

// actionErrMsg carries a failed row-level action; the rendered page stays up
// and only the status line changes.
type actionErrMsg struct{ err error }

// renavigateMsg requests a full re-navigation to the current page after a
// successful row action.
type renavigateMsg struct{}

// logoutDoneMsg reports the logout command result.
type logoutDoneMsg struct{ err error }

// buildPage returns the data-fetch command for a page, or nil for a page
// outside the enum (rendered as an empty view, not an error).
func (a *App) buildPage(p page, gen uint64) tea.Cmd {
	switch p {
	case pageDashboard:
		return fetchDashboard(a.client, gen)
	case pageInstances:
		return fetchInstances(a.client, gen)
	case pageTorrents:
		return fetchTorrentsPage(a.client, gen, a.instanceCache, a.torrents.selected)
	case pageSites:
		return fetchSites(a.client, gen)
	case pageSpeedRules:
		return fetchSpeedRules(a.client, gen)
	case pageRemoveRules:
		return fetchRemoveRules(a.client, gen)
	case pageLogs:
		return fetchLogs(a.client, gen)
	case pageSettings:
		return fetchSettings(a.client, gen)
	default:
		return nil
	}
}
