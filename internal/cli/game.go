package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

func newCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game and join it",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sess, err := app.SessionManager.CreateGame(cmd.Context(), name)
			if err != nil {
				return err
			}

			if err := cfg.SaveSession(sess); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintSession(sess, "Game created")
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Your player name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <game-id>",
		Short: "Join an existing game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sess, err := app.SessionManager.JoinGame(cmd.Context(), model.GameID(args[0]), name)
			if err != nil {
				return err
			}

			if err := cfg.SaveSession(sess); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintSession(sess, "Joined game")
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Your player name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Leave the current session",
		Long: `Leave the current session and forget it locally.

Scores already saved stay in the game; rejoining with the same name
picks them back up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ClearSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session cleared")
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check storage connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			out := NewOutput(cfg.Output)
			if err := app.Storage.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("storage unavailable: %w", err)
			}
			out.PrintMessage("Storage OK")
			return nil
		},
	}
}
