package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metroroute/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP routing service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := root.load()
			if err != nil {
				return err
			}
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.planner, server.WithLogger(a.logger))
			return srv.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
