package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/yahtzeegame-go/internal/dependencies/clock"
	"github.com/mcoot/yahtzeegame-go/internal/dependencies/random"
	"github.com/mcoot/yahtzeegame-go/internal/notify"
	"github.com/mcoot/yahtzeegame-go/internal/services/gamesync"
	"github.com/mcoot/yahtzeegame-go/internal/services/roster"
	"github.com/mcoot/yahtzeegame-go/internal/services/session"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
	"github.com/mcoot/yahtzeegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/yahtzeegame-go/internal/storage/redis"
	"github.com/mcoot/yahtzeegame-go/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Notifier type constants
const (
	NotifierTypeMemory = "memory"
	NotifierTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage and change notification
	Storage  storage.Storage
	Notifier notify.Notifier

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Synchronizer   *gamesync.Synchronizer
	SessionManager *session.Manager
	RosterService  *roster.Service

	// redisClient is the shared connection behind redis storage and
	// notification, closed with the app
	redisClient *redis.Client
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType
	// or NotifierType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// NotifierType selects the change-notification transport ("memory" or
	// "redis"). If empty, defaults to "memory". Cross-process sync needs
	// "redis"; "memory" only reaches subscribers in the same process.
	NotifierType string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}
	notifierType := cfg.NotifierType
	if notifierType == "" {
		notifierType = NotifierTypeMemory
	}

	// Storage and notifier share one Redis connection when both use it
	var redisClient *redis.Client
	if storageType == StorageTypeRedis || notifierType == NotifierTypeRedis {
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when storage or notifier is redis")
		}
		opts, err := redis.ParseURL(cfg.RedisConfig.URL)
		if err != nil {
			return nil, err
		}
		opts.PoolSize = cfg.RedisConfig.PoolSize
		opts.MinIdleConns = cfg.RedisConfig.MinIdleConns
		redisClient = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, err
		}
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		store = redisstorage.NewWithClient(redisClient, *cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	var notifier notify.Notifier
	switch notifierType {
	case NotifierTypeMemory:
		notifier = notify.NewBroker()
	case NotifierTypeRedis:
		notifier = notify.NewRedisNotifier(redisClient, logger)
	default:
		return nil, errors.New("invalid NotifierType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, notifier, clock.New(), random.New(), logger)
	app.redisClient = redisClient
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	notifier notify.Notifier,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	synchronizer := gamesync.New(store, notifier, clk, logger)
	sessionManager := session.NewManager(store, synchronizer, clk, rnd, logger)
	rosterService := roster.NewService(store, logger)

	return &App{
		Storage:        store,
		Notifier:       notifier,
		Clock:          clk,
		Random:         rnd,
		Synchronizer:   synchronizer,
		SessionManager: sessionManager,
		RosterService:  rosterService,
	}
}

// Close tears down the session and releases storage connections
func (a *App) Close() error {
	a.Synchronizer.Reset()

	var errs []error
	// The redis storage shares the client closed below, so closing it
	// here would double-close
	if _, shared := a.Storage.(*redisstorage.Storage); !shared {
		if closer, ok := a.Storage.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
