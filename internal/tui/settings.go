package tui

import (
	"bytes"
	"encoding/json"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tlundin/reel/internal/api"
)

// settingsState shows the raw backend configuration as a scrollable
// formatted text block.
type settingsState struct {
	raw   json.RawMessage
	vp    viewport.Model
	ready bool
}

func fetchSettings(c api.Backend, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := fetchContext()
		defer cancel()
		raw, err := c.Config(ctx)
		if err != nil {
			return pageErrMsg{gen: gen, page: pageSettings, err: err}
		}
		return pageDataMsg{gen: gen, page: pageSettings, data: raw}
	}
}

func updateSettings(a *App, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	a.settings.vp, cmd = a.settings.vp.Update(msg)
	return cmd
}

// formatConfig pretty-prints the raw document; non-JSON payloads pass
// through untouched.
func formatConfig(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func (a *App) setSettingsContent(width, height int) {
	st := &a.settings
	if !st.ready {
		st.vp = viewport.New(width, height)
		st.ready = true
	} else {
		st.vp.Width = width
		st.vp.Height = height
	}
	st.vp.SetContent(formatConfig(st.raw))
}

func renderSettings(a *App, width, height int) string {
	st := &a.settings
	if len(st.raw) == 0 {
		return "\n  No configuration loaded"
	}
	if !st.ready || st.vp.Width != width || st.vp.Height != height {
		a.setSettingsContent(width, height)
	}
	return st.vp.View()
}
