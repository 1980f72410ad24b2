package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors used by the TUI. Views reference theme fields,
// never raw color values.
type Theme struct {
	Fg       lipgloss.Color
	FgDim    lipgloss.Color
	FgBright lipgloss.Color
	Border   lipgloss.Color
	Accent   lipgloss.Color
	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	// Log severity colors. Warning/error levels reuse Warning/Critical.
	DebugLevel lipgloss.Color
	InfoLevel  lipgloss.Color
}

// TerminalTheme returns ANSI defaults so the TUI inherits the terminal palette.
func TerminalTheme() Theme {
	return Theme{
		Fg:         lipgloss.Color("7"),
		FgDim:      lipgloss.Color("8"),
		FgBright:   lipgloss.Color("15"),
		Border:     lipgloss.Color("8"),
		Accent:     lipgloss.Color("4"),
		Healthy:    lipgloss.Color("2"),
		Warning:    lipgloss.Color("3"),
		Critical:   lipgloss.Color("1"),
		DebugLevel: lipgloss.Color("8"),
		InfoLevel:  lipgloss.Color("7"),
	}
}

// StateColor returns a color for a torrent state string.
func (t Theme) StateColor(state string) lipgloss.Color {
	switch state {
	case "downloading", "uploading", "seeding":
		return t.Healthy
	case "stalledUP", "stalledDL", "queued", "checking":
		return t.Warning
	case "error", "missingFiles":
		return t.Critical
	default:
		return t.FgDim
	}
}

// LevelColor returns a color for a backend log severity level.
func (t Theme) LevelColor(level string) lipgloss.Color {
	switch level {
	case "debug":
		return t.DebugLevel
	case "info":
		return t.InfoLevel
	case "warning", "warn":
		return t.Warning
	case "error", "critical":
		return t.Critical
	default:
		return t.FgDim
	}
}

// ConnIndicator returns a colored circle for an instance connection state.
func (t Theme) ConnIndicator(connected bool) string {
	if connected {
		return lipgloss.NewStyle().Foreground(t.Healthy).Render("●")
	}
	return lipgloss.NewStyle().Foreground(t.FgDim).Render("○")
}

// EnabledMark returns a colored check/dash for an enabled flag.
func (t Theme) EnabledMark(enabled bool) string {
	if enabled {
		return lipgloss.NewStyle().Foreground(t.Healthy).Render("✓")
	}
	return lipgloss.NewStyle().Foreground(t.FgDim).Render("–")
}
