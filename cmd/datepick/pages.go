package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
	"github.com/alexisbeaulieu97/datepick/pkg/pagination"
)

type pagesOptions struct {
	siblings int
	styled   bool
}

func newPagesCmd(root *rootFlags) *cobra.Command {
	opts := &pagesOptions{siblings: -1}

	cmd := &cobra.Command{
		Use:   "pages <current> <total>",
		Short: "Print the compact page list for a pager",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.siblings, "siblings", -1, "Pages shown on each side of the current one (default from config)")
	cmd.Flags().BoolVar(&opts.styled, "styled", false, "Render with terminal styling")

	return cmd
}

func runPages(cmd *cobra.Command, root *rootFlags, opts *pagesOptions, args []string) error {
	app, err := loadApp(cmd, root, nil)
	if err != nil {
		return err
	}

	current, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("current page: %w", err)
	}
	total, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("total pages: %w", err)
	}
	if total < 1 || current < 1 || current > total {
		return fmt.Errorf("page %d is outside 1..%d", current, total)
	}

	siblings := opts.siblings
	if siblings < 0 {
		siblings = app.cfg.PageSiblings
	}

	out := cmd.OutOrStdout()
	if opts.styled {
		_, err = fmt.Fprintln(out, components.NewPagination(current, total, siblings).View())
		return err
	}

	items := pagination.Pages(current, total, siblings)
	labels := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Label()
		if item.Current {
			label = "[" + label + "]"
		}
		labels = append(labels, label)
	}
	_, err = fmt.Fprintln(out, strings.Join(labels, " "))
	return err
}
