package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datepick/internal/tui/picker"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

var errCancelled = errors.New("cancelled")

type pickOptions struct {
	initial string
	closed  bool
	engine  engineFlags
}

// pickRunner runs the interactive program and returns its final model.
var pickRunner = func(cmd *cobra.Command, m picker.Model) (picker.Model, error) {
	final, err := tea.NewProgram(m, tea.WithOutput(cmd.ErrOrStderr())).Run()
	if err != nil {
		return picker.Model{}, err
	}
	return final.(picker.Model), nil
}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a date interactively and print it",
		Long: `Pick opens a calendar in the terminal. Arrow keys or hjkl move the cursor,
[ and ] change month, t jumps to today and enter selects. The chosen date is
printed to stdout in the configured format; quitting exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.initial, "initial", "", "Preselected date in the display layout or YYYY-MM-DD")
	cmd.Flags().BoolVar(&opts.closed, "closed", false, "Start with the calendar closed")
	opts.engine.bind(cmd)

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags, opts *pickOptions) error {
	if !isTerminal() {
		return errors.New("pick needs an interactive terminal; use grid for scripted output")
	}

	app, err := loadApp(cmd, root, &opts.engine)
	if err != nil {
		return err
	}
	initial, err := parseOptionalDate(app.cfg.Format, opts.initial)
	if err != nil {
		return fmt.Errorf("--initial: %w", err)
	}

	model := picker.New(picker.Options{
		Layout:       app.cfg.Format,
		Placeholder:  app.cfg.Placeholder,
		Bounds:       app.bounds,
		Initial:      initial,
		PageSiblings: app.cfg.PageSiblings,
		StartOpen:    !opts.closed,
		QuitOnSelect: true,
		Logger:       app.log,
	})

	final, err := pickRunner(cmd, model)
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	if final.Cancelled() {
		app.log.Debug("picker cancelled")
		return errCancelled
	}

	d, ok := final.Selected()
	if !ok {
		return errCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), calendar.Format(d, app.cfg.Format))
	return nil
}
