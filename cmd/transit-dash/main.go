package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/smarttransit/transitdash/internal/apiclient"
	"github.com/smarttransit/transitdash/internal/logging"
	"github.com/smarttransit/transitdash/internal/mockdata"
	"github.com/smarttransit/transitdash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var role string
	var apiURL string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/transitdash/config.yml)")
	flag.StringVar(&role, "role", "", "role to open at start: operator, passenger or driver")
	flag.StringVar(&apiURL, "api-url", "", "override the transit API base URL")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("SmartTransit Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if role != "" {
		cfg.StartRole = role
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	start, err := cfg.startState()
	if err != nil {
		return err
	}

	logger := logrus.StandardLogger()
	cleanupLogger, err := logging.Configure(logger, cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging to stderr)\n", err)
	}
	defer cleanupLogger()

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	store, err := mockdata.Default()
	if cfg.Fixtures != "" {
		store, err = mockdata.LoadFile(logging.ExpandHome(cfg.Fixtures))
	}
	if err != nil {
		return fmt.Errorf("loading dashboard data: %w", err)
	}

	opts := []tui.Option{
		tui.WithStartState(start),
		tui.WithLogger(logrus.NewEntry(logger)),
	}
	if cfg.APIURL != "" {
		client := apiclient.New(cfg.APIURL, cfg.APIToken)
		opts = append(opts, tui.WithHealthChecker(client, cfg.HealthInterval))
	}

	logger.WithFields(logrus.Fields{
		"version": version,
		"start":   start.Role.String(),
		"api":     cfg.APIURL,
	}).Info("starting dashboard")

	app := tui.NewApp(store.Dataset(), opts...)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
