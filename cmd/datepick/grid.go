package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
	"github.com/alexisbeaulieu97/datepick/internal/web"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

type gridOptions struct {
	month    string
	selected string
	today    string
	nav      int
	json     bool
	html     bool
	engine   engineFlags
}

func newGridCmd(root *rootFlags) *cobra.Command {
	opts := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Render a month calendar",
		Long: `Grid renders one month as a styled terminal calendar, as JSON cells or as
an HTML fragment. Without --month it shows the month of the selection, or
the current month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.month, "month", "", "Month to render, YYYY-MM")
	cmd.Flags().StringVar(&opts.selected, "selected", "", "Selected date in the display layout or YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.today, "today", "", "Date treated as today, display layout or YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.nav, "nav", 0, "Months to move from --month, may be negative")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the grid as JSON")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Output the grid as an HTML fragment")
	cmd.MarkFlagsMutuallyExclusive("json", "html")
	opts.engine.bind(cmd)

	return cmd
}

func runGrid(cmd *cobra.Command, root *rootFlags, opts *gridOptions) error {
	app, err := loadApp(cmd, root, &opts.engine)
	if err != nil {
		return err
	}

	today := calendar.FromTime(time.Now())
	if opts.today != "" {
		if today, err = calendar.ParseInput(app.cfg.Format, opts.today); err != nil {
			return fmt.Errorf("--today: %w", err)
		}
	}

	selected, err := parseOptionalDate(app.cfg.Format, opts.selected)
	if err != nil {
		return fmt.Errorf("--selected: %w", err)
	}
	if selected != nil {
		d, err := calendar.SelectDate(selected.Year, selected.Month, selected.Day, app.bounds)
		if err != nil {
			app.log.With("date", selected.String()).Warn("selection rejected")
			fmt.Fprintln(cmd.ErrOrStderr(), components.WarningAlert(err.Error()).View())
			selected = nil
		} else {
			selected = &d
		}
	}

	view := today.MonthView()
	switch {
	case opts.month != "":
		if view, err = calendar.ParseMonth(opts.month); err != nil {
			return fmt.Errorf("--month: %w", err)
		}
	case selected != nil:
		view = selected.MonthView()
	}
	view = view.Add(opts.nav)

	out := cmd.OutOrStdout()
	if !opts.json && !opts.html {
		rendered, err := components.RenderMonth(view, selected, today, app.bounds)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	}

	cells, err := view.Grid(selected, today, app.bounds)
	if err != nil {
		return err
	}
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(web.NewCalendarPayload(view, cells, selected, today))
	}
	if err := web.CalendarNode(view, cells, selected, "/").Render(out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
