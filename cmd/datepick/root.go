package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/config"
	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// appContext bundles what every command needs after start-up.
type appContext struct {
	cfg    *config.Config
	bounds calendar.Bounds
	log    *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datepick",
		Short:         "datepick renders month calendars and picks dates in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "Path to the YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newGridCmd(flags))
	cmd.AddCommand(newPagesCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadApp reads the configuration, applies command line overrides, installs
// the theme and builds the logger.
func loadApp(cmd *cobra.Command, root *rootFlags, overrides *engineFlags) (*appContext, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		if err := overrides.apply(cfg); err != nil {
			return nil, err
		}
	}

	bounds, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}

	theme, ok := components.ThemeByName(cfg.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	components.SetTheme(theme)

	level := cfg.Log.Level
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	log.WithFields(map[string]any{
		"command": cmd.Name(),
		"config":  root.configPath,
		"bounds":  bounds.String(),
	}).Debug("configuration loaded")

	return &appContext{cfg: cfg, bounds: bounds, log: log}, nil
}
