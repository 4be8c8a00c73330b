package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzeegame-go/internal/api"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only HTTP API",
		Long: `Serve the read-only HTTP API over the configured storage.

Exposes a health probe and per-game rosters with computed totals, for
spectator pages and scripts. Score entry stays in the CLI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			router := api.NewRouter(api.RouterConfig{
				Logger:  logger,
				Storage: app.Storage,
				Roster:  app.RosterService,
			})

			serverCfg := api.DefaultServerConfig()
			serverCfg.Addr = addr
			server := api.NewServer(router, serverCfg, logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-stop:
				return server.Shutdown(context.Background())
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
