package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/statekit/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var startPage string
	var headless bool
	var duration time.Duration
	var showConfig bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/statekit/config.yml)")
	flag.StringVar(&startPage, "page", "", "page to open first: counter, reducer or timer")
	flag.BoolVar(&headless, "headless", false, "run the interval counter without the TUI, printing each tick")
	flag.DurationVar(&duration, "duration", 0, "headless run time (0 runs until interrupted)")
	flag.BoolVar(&showConfig, "print-config", false, "print the effective configuration as YAML")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("statekit\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err == nil && startPage != "" {
		cfg.StartPage = startPage
		err = cfg.validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if showConfig {
		if err := printConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cleanupLogger := configureLogger(cfg, headless)
	defer cleanupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if headless {
		_, err = runHeadless(ctx, cfg, duration, os.Stdout)
	} else {
		err = runTUI(ctx, cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cfg appConfig) *tui.App {
	app := tui.NewApp(
		tui.NewCounterPage(cfg.InitialCount, cfg.TitleFormat),
		tui.NewReducerPage(cfg.InitialCount),
		tui.NewTimerPage(cfg.TickInterval, cfg.HistorySize),
	)
	app.Show(cfg.StartPage)
	return app
}

func runTUI(ctx context.Context, cfg appConfig) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := tui.InitializeSkin(cfg.Skin, dir); err != nil {
		log.Warn().Err(err).Str("skin", cfg.Skin).Msg("failed to load skin, using default")
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	app := newApp(cfg)
	defer app.Dispose()

	p := tea.NewProgram(app, tea.WithAltScreen())
	log.Info().Str("page", cfg.StartPage).Dur("tick", cfg.TickInterval).Msg("starting tui")

	// Run the program and a watcher that quits it on SIGINT/SIGTERM. The
	// watcher also exits once the program returns on its own.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-runCtx.Done()
		p.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			// Interrupted by a signal; treat as a normal shutdown.
			return nil
		}
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	log.Info().Msg("tui exited")
	return nil
}
