package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// DisplayConfig controls how dates and times are rendered in the TUI.
type DisplayConfig struct {
	TimeFormat string `toml:"time_format"`
}

// ThemeConfig holds optional color overrides. Empty strings use ANSI defaults.
// Values can be ANSI numbers ("1"), 256-palette numbers ("196"), or hex ("#ff0000").
type ThemeConfig struct {
	Fg         string `toml:"fg"`
	FgDim      string `toml:"fg_dim"`
	FgBright   string `toml:"fg_bright"`
	Border     string `toml:"border"`
	Accent     string `toml:"accent"`
	Healthy    string `toml:"healthy"`
	Warning    string `toml:"warning"`
	Critical   string `toml:"critical"`
	DebugLevel string `toml:"debug_level"`
	InfoLevel  string `toml:"info_level"`
}

// Config is the client-side configuration.
type Config struct {
	Server  string        `toml:"server"` // backend base URL, e.g. http://127.0.0.1:9090
	Cookie  string        `toml:"cookie"` // raw session cookie, e.g. "session=..."
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/reel/config.toml,
// falling back to ~/.config/reel/config.toml if unset.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "reel", "config.toml")
}

const defaultConfigContent = `# Reel client configuration.
#
# server = "http://127.0.0.1:9090"
# cookie = "session=..."
#
# [display]
# time_format = "15:04:05"    # Go time layout
#
# [theme]
# Colors default to ANSI (0-15) so the TUI inherits your terminal theme.
# Override with ANSI numbers, 256-palette numbers, or hex values.
#
# fg = "7"
# fg_dim = "8"
# fg_bright = "15"
# border = "8"
# accent = "4"
# healthy = "2"
# warning = "3"
# critical = "1"
# debug_level = "8"
# info_level = "7"
`

// EnsureDefaultConfig creates the default config file if it does not exist.
// Returns the path to the config file.
func EnsureDefaultConfig(path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o600); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return path, nil
}

// LoadConfig reads and parses a TOML client config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Display.TimeFormat == "" {
		cfg.Display.TimeFormat = "15:04:05"
	}
	return &cfg, nil
}

// BuildTheme returns a Theme starting from ANSI defaults with any
// non-empty ThemeConfig fields applied as overrides.
func BuildTheme(tc ThemeConfig) Theme {
	t := TerminalTheme()
	override := func(dst *lipgloss.Color, src string) {
		if src != "" {
			*dst = lipgloss.Color(src)
		}
	}
	override(&t.Fg, tc.Fg)
	override(&t.FgDim, tc.FgDim)
	override(&t.FgBright, tc.FgBright)
	override(&t.Border, tc.Border)
	override(&t.Accent, tc.Accent)
	override(&t.Healthy, tc.Healthy)
	override(&t.Warning, tc.Warning)
	override(&t.Critical, tc.Critical)
	override(&t.DebugLevel, tc.DebugLevel)
	override(&t.InfoLevel, tc.InfoLevel)
	return t
}
