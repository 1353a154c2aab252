package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/andareed/siftly-swipe/config"
	"github.com/andareed/siftly-swipe/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

type flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Session    string
	Edge       string
	Generate   int
}

func main() {
	var (
		f         flags
		logCloser func()
		cfg       *config.Config
	)

	app := &cli.Command{
		Name:      "swipelist",
		Usage:     "Browse a list whose rows swipe open to reveal an action",
		UsageText: "swipelist [options] [file.csv]",
		Description: `Each row of the list can be dragged sideways with the mouse to reveal an
action behind it. A short drag springs back, a drag past the halfway point
leaves the row open, and a drag nearly across the row archives it.

Without a CSV file the rows of --session are shown, or --generate rows.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SWIPELIST_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("SWIPELIST_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write logs to this file (logging is off without it)",
				Sources:     cli.EnvVars("SWIPELIST_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.StringFlag{
				Name:        "session",
				Usage:       "session file to restore from and save to on quit",
				Sources:     cli.EnvVars("SWIPELIST_SESSION"),
				Destination: &f.Session,
			},
			&cli.StringFlag{
				Name:        "edge",
				Usage:       "edge the action is revealed at (left, right)",
				Sources:     cli.EnvVars("SWIPELIST_EDGE"),
				Destination: &f.Edge,
			},
			&cli.IntFlag{
				Name:        "generate",
				Usage:       "number of rows to generate when no file is given",
				Value:       100,
				Destination: &f.Generate,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.Setup(f.LogLevel, f.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err = config.Load(f.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if err := applyFlags(cfg, f); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, cfg, c.Args().First(), f.Generate)
		},
	}

	exitCode := 0
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		log.Error().Err(err).Msg("swipelist failed")
		exitCode = 1
	}

	if logCloser != nil {
		logCloser()
	}
	os.Exit(exitCode)
}

// applyFlags lets command-line flags override the config file.
func applyFlags(cfg *config.Config, f flags) error {
	if f.Session != "" {
		cfg.SessionFile = f.Session
	}
	if f.Edge != "" {
		cfg.Edge = f.Edge
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, inputPath string, generate int) error {
	var sess *sessionDTO
	if cfg.SessionFile != "" {
		s, err := LoadSession(cfg.SessionFile)
		switch {
		case err == nil:
			sess = s
		case errors.Is(err, fs.ErrNotExist):
			log.Info().Str("path", cfg.SessionFile).Msg("no session yet")
		default:
			return fmt.Errorf("load session: %w", err)
		}
	}

	items, err := loadItems(inputPath, sess, generate)
	if err != nil {
		return err
	}

	m := newModel(cfg, items, log.Logger)
	m.InitialPath = inputPath
	if sess != nil {
		applySession(m, sess)
	}

	_, err = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
