// Package cli implements the yzgame command line client. Commands are
// one-shot: each invocation rejoins the persisted session, applies its
// edit and exits, except watch and serve which stay resident.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzeegame-go/internal/factory"
	"github.com/mcoot/yahtzeegame-go/internal/model"
	redisstorage "github.com/mcoot/yahtzeegame-go/internal/storage/redis"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "yzgame",
		Short: "Shared Yahtzee scorecard",
		Long: `yzgame keeps a Yahtzee scorecard in sync between players.

Create a game, share its id, and everyone who joins fills in their own
column while seeing everyone else's. Point YZGAME_REDIS_URL at a shared
Redis to play across machines.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis, sqlite (env: YZGAME_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: YZGAME_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env: YZGAME_DB)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: YZGAME_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newScratchCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newBonusCmd())
	rootCmd.AddCommand(newCardCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp wires the application from the CLI configuration
func newApp() (*factory.App, error) {
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage,
		SQLitePath:  cfg.DBPath,
	}

	if cfg.RedisURL != "" {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
		factoryCfg.NotifierType = factory.NotifierTypeRedis
	}

	return factory.New(factoryCfg)
}

// resumeSession rejoins the game recorded in the session file, loading
// the player's card and subscribing to changes. Rejoining is idempotent
// so a resumed session never loses entered scores.
func resumeSession(ctx context.Context, app *factory.App) (*model.Session, error) {
	sess, err := cfg.LoadSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, model.ErrNoSession
	}

	return app.SessionManager.JoinGame(ctx, sess.GameID, sess.PlayerName)
}
