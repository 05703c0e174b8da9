package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datepick/internal/web"
)

type serveOptions struct {
	addr   string
	engine engineFlags
}

// serveRunner blocks serving srv until ctx ends.
var serveRunner = func(ctx context.Context, srv *web.Server) error {
	return srv.ListenAndServe(ctx)
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the picker as a web page with a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides config)")
	opts.engine.bind(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, root *rootFlags, opts *serveOptions) error {
	app, err := loadApp(cmd, root, &opts.engine)
	if err != nil {
		return err
	}

	addr := app.cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	srv := web.NewServer(web.Options{
		Addr:           addr,
		Layout:         app.cfg.Format,
		Placeholder:    app.cfg.Placeholder,
		Bounds:         app.bounds,
		Logger:         app.log,
		PageSiblings:   app.cfg.PageSiblings,
		AllowedOrigins: app.cfg.Server.AllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveRunner(ctx, srv)
}
