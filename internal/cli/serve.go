package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/httpserver"
	"github.com/robalobadob/wordgrid/internal/store"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP/JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			fac, err := a.factory()
			if err != nil {
				return err
			}
			srv := httpserver.New(httpserver.Options{
				Store:        store.NewMemoryStore(),
				Factory:      fac,
				JWTSecret:    a.cfg.JWTSecret,
				ClientOrigin: a.cfg.ClientOrigin,
				Logger:       a.log,
			})
			a.log.Info().Str("addr", addr).Msg("starting http server")
			return srv.Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :5175)")
	return cmd
}
