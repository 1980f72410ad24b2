package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlundin/reel/internal/api"
)

const logFetchLimit = 200

// logsState wraps a viewport over the rendered log lines.
type logsState struct {
	entries []api.LogEntry
	vp      viewport.Model
	ready   bool
}

func fetchLogs(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		list, err := c.Logs(ctx, logFetchLimit)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageLogs, err: err}
		}
		return pageDataMsg{gen: gen, page: pageLogs, data: list}
	}
}

func updateLogs(a *App, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	a.logs.vp, cmd = a.logs.vp.Update(msg)
	return cmd
}

// logLine renders one entry as "time LEVEL message" with a severity-colored tag.
func logLine(e api.LogEntry, theme *Theme, innerW int) string {
	dim := mutedStyle(theme)
	level := strings.ToLower(e.Level)
	tag := lipgloss.NewStyle().Foreground(theme.LevelColor(level)).Render(padCell(strings.ToUpper(level), 8))
	line := " " + dim.Render(e.Time) + "  " + tag + " " + e.Message
	return TruncateStyled(line, innerW)
}

// setLogsContent rebuilds the viewport content after a load or resize.
func (a *App) setLogsContent(width, height int) {
	st := &a.logs
	if !st.ready {
		st.vp = viewport.New(width, height)
		st.ready = true
	} else {
		st.vp.Width = width
		st.vp.Height = height
	}
	lines := make([]string, len(st.entries))
	for i, e := range st.entries {
		lines[i] = logLine(e, &a.theme, width)
	}
	st.vp.SetContent(strings.Join(lines, "\n"))
	st.vp.GotoBottom()
}

func renderLogs(a *App, width, height int) string {
	st := &a.logs
	if len(st.entries) == 0 {
		return "\n  No log entries"
	}
	if !st.ready || st.vp.Width != width || st.vp.Height != height {
		a.setLogsContent(width, height)
	}
	return st.vp.View()
}
