package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smarttransit/transitdash/internal/httpserver"
	"github.com/smarttransit/transitdash/internal/logging"
	"github.com/smarttransit/transitdash/internal/mockdata"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// runServer serves the mock API until SIGINT or SIGTERM.
func runServer(cfg appConfig) error {
	logger := logrus.StandardLogger()
	cleanupLogger, err := logging.Configure(logger, cfg.LogLevel, "", os.Stderr)
	if err != nil {
		return err
	}
	defer cleanupLogger()
	log := logrus.NewEntry(logger)

	store, err := mockdata.Default()
	if cfg.Fixtures != "" {
		store, err = mockdata.LoadFile(logging.ExpandHome(cfg.Fixtures))
	}
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	apiServer := httpserver.NewServer(cfg.APIAddr, cfg.APIToken, store, log)
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	printStartupBanner(cfg, apiServer.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return apiServer.Stop()
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("shutdown failed")
		return err
	}
	signal.Stop(sigCh)
	return nil
}

func printStartupBanner(cfg appConfig, addr string) {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D0A1")).Render("SmartTransit Mock API")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	auth := "disabled"
	if cfg.APIToken != "" {
		auth = "bearer token"
	}
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	fmt.Println(title)
	fmt.Println(muted.Render("  listening ") + "http://" + addr)
	fmt.Println(muted.Render("  auth      ") + auth)
	fmt.Println(muted.Render("  config    ") + configPath)
	fmt.Println(muted.Render("  routes    ") + "GET /api/health, GET /api/status")
}
