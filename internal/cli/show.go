package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card",
		Short: "Show your scorecard",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := resumeSession(cmd.Context(), app); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintCard(app.Synchronizer.Card())
			return nil
		},
	}
}

func newPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Show every player's card and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			sess, err := resumeSession(ctx, app)
			if err != nil {
				return err
			}

			entries, err := app.RosterService.ListPlayers(ctx, sess.GameID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintPlayers(sess.GameID, entries)
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the game for score changes",
		Long: `Watch the game and print every peer's card as it changes.

Stays connected until interrupted. Needs the redis notifier to see
changes from other processes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			sess, err := resumeSession(ctx, app)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			app.Synchronizer.OnPeerChange(func(playerName string) {
				card, ok := app.Synchronizer.Peer(playerName)
				if !ok {
					return
				}
				out.PrintMessage("Update from " + playerName)
				out.PrintCard(card)
			})

			out.PrintMessage("Watching game " + string(sess.GameID) + " (ctrl-c to stop)")

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}
}
