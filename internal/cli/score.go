package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <value>",
		Short: "Record a score for a category",
		Long: `Record a score for a category on your card.

Numeric categories (the upper section, three/four of a kind, chance)
take the total of the dice, e.g. "set threes 9". Achievement categories
(full house, straights, yahtzee) take true or false, e.g.
"set yahtzee true".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("unknown category %q", args[0])
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := resumeSession(ctx, app); err != nil {
				return err
			}

			if cat.IsFlag() {
				achieved, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("%s takes true or false", cat)
				}
				if err := app.Synchronizer.SetAchieved(ctx, cat, achieved); err != nil {
					return err
				}
			} else {
				points, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("%s takes a dice total", cat)
				}
				if err := app.Synchronizer.SetScore(ctx, cat, points); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.PrintCard(app.Synchronizer.Card())
			return nil
		},
	}
}

func newScratchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scratch <category>",
		Short: "Scratch a category (forfeit it for zero)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("unknown category %q", args[0])
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := resumeSession(ctx, app); err != nil {
				return err
			}

			app.Synchronizer.Scratch(ctx, cat)

			out := NewOutput(cfg.Output)
			out.PrintCard(app.Synchronizer.Card())
			return nil
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <category>",
		Short: "Clear a category back to unplayed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("unknown category %q", args[0])
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := resumeSession(ctx, app); err != nil {
				return err
			}

			app.Synchronizer.Clear(ctx, cat)

			out := NewOutput(cfg.Output)
			out.PrintCard(app.Synchronizer.Card())
			return nil
		},
	}
}

func newBonusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonus <count>",
		Short: "Set your bonus yahtzee count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count: %w", err)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if _, err := resumeSession(ctx, app); err != nil {
				return err
			}

			if err := app.Synchronizer.SetYahtzeeBonus(ctx, count); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintCard(app.Synchronizer.Card())
			return nil
		},
	}
}
