package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/config"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

// engineFlags override the configured layout, bounds and theme.
type engineFlags struct {
	format string
	min    string
	max    string
	theme  string
}

func (f *engineFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Display layout using MM, DD and YYYY (overrides config)")
	cmd.Flags().StringVar(&f.min, "min", "", "Earliest selectable date, YYYY-MM-DD (overrides config)")
	cmd.Flags().StringVar(&f.max, "max", "", "Latest selectable date, YYYY-MM-DD (overrides config)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Colour theme: default, light or dark (overrides config)")
}

// apply copies the set flags onto cfg and re-validates the result.
func (f *engineFlags) apply(cfg *config.Config) error {
	if v := strings.TrimSpace(f.format); v != "" {
		cfg.Format = v
	}
	if v := strings.TrimSpace(f.min); v != "" {
		cfg.MinDate = v
	}
	if v := strings.TrimSpace(f.max); v != "" {
		cfg.MaxDate = v
	}
	if v := strings.TrimSpace(f.theme); v != "" {
		cfg.Theme = v
	}
	return config.ValidateConfig(cfg)
}

// parseOptionalDate reads a date flag in the display layout or ISO; empty
// means unset.
func parseOptionalDate(layout, value string) (*calendar.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := calendar.ParseInput(layout, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
