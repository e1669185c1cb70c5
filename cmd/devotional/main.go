package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"devotional/internal/adapters/editor"
	"devotional/internal/adapters/tui"
	"devotional/internal/application/commands"
	"devotional/internal/bootstrap"
	"devotional/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ./devotional.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters; the alt screen owns the terminal so logs are dropped
	repo := bootstrap.Repository(cfg)
	logger := bootstrap.Logger(io.Discard, false)
	generator := commands.NewGenerateCommand(bootstrap.Providers(cfg), repo, cfg.App, logger)
	indexer := commands.NewIndexCommand(repo, repo, logger)
	editorOpener := editor.NewOpener(cfg.Editor)

	// Create and run TUI app
	app := tui.NewApp(repo, generator, indexer, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
