package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"busfinder/internal/booking"
	"busfinder/internal/telemetry"
	"busfinder/internal/ui"
)

func main() {
	app := &cli.App{
		Name:  "busfinder",
		Usage: "terminal mockup of a bus search, tracking and booking app",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date-format",
				Value: booking.DefaultDateFormat,
				Usage: "layout for booking dates (Go reference time)",
			},
			&cli.StringFlag{
				Name:    "log-file",
				EnvVars: []string{"BUSFINDER_LOG"},
				Usage:   "append debug logs to this file (the terminal belongs to the UI)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	if path := c.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		if os.Getenv("BUSFINDER_DEBUG") == "YES" {
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	}

	ctx := context.Background()
	tracer, err := telemetry.New(ctx)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer tracer.Shutdown(ctx)

	state := booking.NewState(c.String("date-format"))
	model := ui.NewAppModel(state, tracer)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
