package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerTickInterval = 120 * time.Millisecond

// spinnerTickMsg advances the spinner frame while a page is loading.
type spinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerTickInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// SpinnerView returns the loading placeholder centered in the content region.
func SpinnerView(frame int, label string, theme *Theme, width, height int) string {
	f := spinnerFrames[frame%len(spinnerFrames)]
	text := accentStyle(theme).Render(f) + "  " + mutedStyle(theme).Render(label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
