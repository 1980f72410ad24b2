package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// byteUnits are IEC units in ascending order. The largest unit keeping the
// scaled value below 1024 is chosen; values beyond TiB stay in TiB.
var byteUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB"}

// FormatBytes renders a byte count as a fixed two-decimal IEC string,
// matching the backend's own formatting. Zero is special-cased as "0 B".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 B"
	}
	v := float64(n)
	unit := 0
	for unit < len(byteUnits)-1 && (v >= 1024 || v <= -1024) {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", v, byteUnits[unit])
}

// FormatSpeed renders a bytes-per-second rate.
func FormatSpeed(n int64) string {
	return FormatBytes(n) + "/s"
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// Truncate shortens a plain (non-styled) string to maxLen, appending "…" if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// TruncateStyled shortens a string that may contain ANSI escape sequences.
func TruncateStyled(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	return ansi.Truncate(s, maxLen, "")
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// padCell left-aligns a plain string within w columns, truncating if needed.
func padCell(s string, w int) string {
	s = Truncate(s, w)
	if n := len([]rune(s)); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// rightAlign right-pads a string with leading spaces to width w.
func rightAlign(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	return strings.Repeat(" ", w-n) + s
}

// centerText pads a styled string to center it within totalW.
func centerText(s string, totalW int) string {
	w := lipgloss.Width(s)
	if w >= totalW {
		return s
	}
	pad := (totalW - w) / 2
	return strings.Repeat(" ", pad) + s
}

// wrapText wraps a string into lines of the given width, breaking on rune boundaries.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		if len(runes) == 0 {
			lines = append(lines, "")
			continue
		}
		for len(runes) > width {
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		lines = append(lines, string(runes))
	}
	return lines
}
