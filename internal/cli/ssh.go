package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordgrid/internal/sshserver"
)

type sshFlags struct {
	addr    string
	hostKey string
	daily   bool
}

func newSSHCommand(a *app) *cobra.Command {
	f := &sshFlags{}
	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the terminal game over SSH",
		Long: `Serve the terminal game over SSH. Every connection gets its own game.

Examples:
  wordgrid ssh --addr :2222 --host-key ./host_ed25519
  ssh -p 2222 localhost`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.addr == "" {
				f.addr = a.cfg.SSHAddr
			}
			if f.hostKey == "" {
				f.hostKey = a.cfg.SSHHostKey
			}
			fac, err := a.factory()
			if err != nil {
				return err
			}
			srv, err := sshserver.New(sshserver.Options{
				Addr:        f.addr,
				HostKeyFile: f.hostKey,
				Daily:       f.daily,
				Factory:     fac,
				Logger:      a.log,
			})
			if err != nil {
				return err
			}
			if f.hostKey == "" {
				a.log.Warn().Msg("no host key configured, using a throwaway key")
			}
			a.log.Info().Str("addr", f.addr).Msg("starting ssh server")
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address (default from config, :2222)")
	cmd.Flags().StringVar(&f.hostKey, "host-key", "", "PEM host key file (default from config)")
	cmd.Flags().BoolVar(&f.daily, "daily", false, "everyone plays today's word")
	return cmd
}
