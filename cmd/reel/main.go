package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tlundin/reel/internal/api"
	"github.com/tlundin/reel/internal/tui"
)

// version is set via -ldflags at build time. GoReleaser fills this automatically.
var version = "dev"

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "--version" {
		fmt.Println("reel " + version)
		return
	}

	fs := flag.NewFlagSet("reel", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  reel [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	server := fs.String("server", "", "backend address (overrides config)")
	cookie := fs.String("cookie", "", "session cookie (overrides config)")
	configPath := fs.String("config", "", "path to client config")
	logPath := fs.String("log", "", "write debug logs to this file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	cfgPath, err := tui.EnsureDefaultConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := tui.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	if *server != "" {
		cfg.Server = *server
	}
	if *cookie != "" {
		cfg.Cookie = *cookie
	}
	if cfg.Server == "" {
		fmt.Fprintf(os.Stderr, "No server configured in %s\n\n", cfgPath)
		fmt.Fprintf(os.Stderr, "Set one in the config file, or pass it directly:\n")
		fmt.Fprintf(os.Stderr, "  reel --server http://host:9090\n")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client, err := api.NewClient(cfg.Server,
		api.WithSessionCookie(cfg.Cookie),
		api.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server %s: %v\n", cfg.Server, err)
		os.Exit(1)
	}

	app := tui.NewApp(client, cfg.Display, tui.BuildTheme(cfg.Theme))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}

// openLogger returns a file-backed slog logger, or a discard logger when no
// path is given. The TUI owns the terminal, so logs never go to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
