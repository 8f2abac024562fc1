package main

import (
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/philtim/whenisthat/calendar"
	"github.com/philtim/whenisthat/catalog"
	"github.com/philtim/whenisthat/config"
	"github.com/philtim/whenisthat/feed"
	"github.com/philtim/whenisthat/logging"
	"github.com/philtim/whenisthat/timesync"
	"github.com/philtim/whenisthat/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// environment is what main needs once the configuration is settled.
type environment struct {
	local      *time.Location
	comparison *time.Location
	logger     zerolog.Logger
	closer     io.Closer
}

// prepare resolves both zones and then opens the log. A bad zone fails
// before any log file is created.
func prepare(cfg *config.Config) (*environment, error) {
	local, err := timesync.LoadZone(cfg.LocalTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading local timezone: %w", err)
	}
	comparison, err := timesync.LoadZone(cfg.ComparisonTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading comparison timezone: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	return &environment{local: local, comparison: comparison, logger: logger, closer: closer}, nil
}

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (default ~/.config/whenisthat.yaml)")
	local := pflag.StringP("local", "l", "", "local timezone, e.g. Europe/Berlin")
	comparison := pflag.StringP("comparison", "t", "", "comparison timezone, e.g. Asia/Tokyo")
	logFile := pflag.String("log-file", "", "write logs to this file")
	logLevel := pflag.String("log-level", "", "log level (debug, info, warn, error)")
	weekStart := pflag.String("week-start", "", "first day of the calendar week (sunday or monday)")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	if *local != "" {
		cfg.LocalTimezone = *local
		if *comparison == "" && cfg.ComparisonTimezone == cfg.LocalTimezone {
			cfg.ComparisonTimezone = config.DefaultComparisonFor(cfg.LocalTimezone)
		}
	}
	if *comparison != "" {
		cfg.ComparisonTimezone = *comparison
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *weekStart != "" {
		cfg.WeekStart = *weekStart
	}
	cfg.Normalize()

	env, err := prepare(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.closer.Close()
	logger := env.logger

	live := feed.New(nil)
	store := timesync.New(live.Now(), env.local, env.comparison)

	logger.Info().
		Str("local", env.local.String()).
		Str("comparison", env.comparison.String()).
		Str("week_start", cfg.WeekStart).
		Msg("starting")

	m := ui.New(ui.Options{
		Store:     store,
		Feed:      live,
		Catalog:   catalog.New(live.Clock()),
		Logger:    logger,
		WeekStart: calendar.ParseWeekStart(cfg.WeekStart),
	})

	// Run the program
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		env.closer.Close()
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
