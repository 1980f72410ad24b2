package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDefaultConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	got, err := EnsureDefaultConfig(path)
	if err != nil {
		t.Fatalf("EnsureDefaultConfig: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Second call is a no-op on an existing file.
	before, _ := os.ReadFile(path)
	if _, err := EnsureDefaultConfig(path); err != nil {
		t.Fatalf("second EnsureDefaultConfig: %v", err)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("existing config was rewritten")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
server = "http://127.0.0.1:9090"
cookie = "session=abc"

[display]
time_format = "15:04"

[theme]
accent = "#00ffff"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server != "http://127.0.0.1:9090" {
		t.Errorf("Server = %q", cfg.Server)
	}
	if cfg.Cookie != "session=abc" {
		t.Errorf("Cookie = %q", cfg.Cookie)
	}
	if cfg.Display.TimeFormat != "15:04" {
		t.Errorf("TimeFormat = %q", cfg.Display.TimeFormat)
	}
	if cfg.Theme.Accent != "#00ffff" {
		t.Errorf("Accent = %q", cfg.Theme.Accent)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server = "host:9090"`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.TimeFormat != "15:04:05" {
		t.Errorf("default TimeFormat = %q", cfg.Display.TimeFormat)
	}
}

func TestLoadConfigDefaultIsParseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := EnsureDefaultConfig(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg.Server != "" {
		t.Errorf("default config sets server %q", cfg.Server)
	}
}

func TestBuildThemeOverrides(t *testing.T) {
	base := TerminalTheme()
	theme := BuildTheme(ThemeConfig{Accent: "#ff00ff", Critical: "196"})
	if theme.Accent != "#ff00ff" {
		t.Errorf("Accent = %q", theme.Accent)
	}
	if theme.Critical != "196" {
		t.Errorf("Critical = %q", theme.Critical)
	}
	// Untouched fields keep ANSI defaults.
	if theme.Fg != base.Fg {
		t.Errorf("Fg = %q, want %q", theme.Fg, base.Fg)
	}
}
