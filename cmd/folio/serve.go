package main

import (
	"github.com/spf13/cobra"

	"github.com/Josepavese/folio/internal/logging"
	"github.com/Josepavese/folio/internal/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(false)
			if err != nil {
				return err
			}
			defer e.logger.Sync()
			if addr == "" {
				addr = e.cfg.Serve.Addr
			}

			p, err := e.profile()
			if err != nil {
				return err
			}
			srv, err := web.New(web.Config{
				Addr:           addr,
				ThemeKey:       e.cfg.Theme.Key,
				AllowedOrigins: e.cfg.Serve.AllowedOrigins,
			}, p, logging.Component(e.logger, "web"))
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			e.watch(ctx, srv.SetProfile)
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
