// Package session implements game creation and joining. A manager owns
// the lifecycle of the process-local session and hands it to the
// synchronizer once identity is established.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mcoot/yahtzeegame-go/internal/dependencies/clock"
	"github.com/mcoot/yahtzeegame-go/internal/dependencies/random"
	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/services/gamesync"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

const (
	gameIDLength = 8
	// No 0/O or 1/I, game ids get read aloud
	gameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	maxPlayerNameLength = 32
)

// Manager creates and joins games and establishes the session
type Manager struct {
	storage storage.Storage
	sync    *gamesync.Synchronizer
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewManager creates a session manager
func NewManager(
	store storage.Storage,
	sync *gamesync.Synchronizer,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		storage: store,
		sync:    sync,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "session")),
	}
}

func validatePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxPlayerNameLength {
		return "", model.ErrInvalidName
	}
	return name, nil
}

// CreateGame creates a new game, registers the creator on the roster,
// provisions their empty score row and establishes the session. The
// three writes are sequential with no rollback: a failure part-way
// surfaces as a PersistenceError and may leave a partial game behind,
// which a retry with a fresh id simply abandons.
func (m *Manager) CreateGame(ctx context.Context, playerName string) (*model.Session, error) {
	playerName, err := validatePlayerName(playerName)
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	gameID := model.GameID(m.random.String(gameIDLength, gameIDAlphabet))

	game := &model.Game{
		ID:        gameID,
		CreatedBy: playerName,
		Status:    model.GameStatusActive,
		CreatedAt: now,
	}
	if err := m.storage.SaveGame(ctx, game); err != nil {
		return nil, &model.PersistenceError{Op: "create game", Err: err}
	}

	player := &model.GamePlayer{
		GameID:     gameID,
		PlayerName: playerName,
		JoinedAt:   now,
	}
	if err := m.storage.UpsertPlayer(ctx, player); err != nil {
		return nil, &model.PersistenceError{Op: "register creator", Err: err}
	}

	if err := m.storage.SaveScore(ctx, record.New(gameID, playerName, now)); err != nil {
		return nil, &model.PersistenceError{Op: "provision score row", Err: err}
	}

	sess := &model.Session{
		GameID:     gameID,
		SessionID:  uuid.NewString(),
		PlayerName: playerName,
		JoinedAt:   now,
	}
	m.sync.StartSession(sess)
	if err := m.sync.Subscribe(ctx); err != nil {
		return nil, err
	}

	m.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("player", playerName))
	return sess, nil
}

// JoinGame joins an existing active game. Joining is idempotent: the
// roster entry is upserted, and a score row is provisioned only if the
// player does not already have one, so rejoining after a disconnect
// keeps all previously entered scores.
func (m *Manager) JoinGame(ctx context.Context, gameID model.GameID, playerName string) (*model.Session, error) {
	playerName, err := validatePlayerName(playerName)
	if err != nil {
		return nil, err
	}

	game, err := m.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != model.GameStatusActive {
		return nil, model.ErrGameNotFound
	}

	now := m.clock.Now()
	player := &model.GamePlayer{
		GameID:     gameID,
		PlayerName: playerName,
		JoinedAt:   now,
	}
	if err := m.storage.UpsertPlayer(ctx, player); err != nil {
		return nil, &model.PersistenceError{Op: "register player", Err: err}
	}

	if _, err := m.storage.GetScore(ctx, gameID, playerName); err != nil {
		if !errors.Is(err, model.ErrScoreNotFound) {
			return nil, &model.PersistenceError{Op: "check score row", Err: err}
		}
		if err := m.storage.SaveScore(ctx, record.New(gameID, playerName, now)); err != nil {
			return nil, &model.PersistenceError{Op: "provision score row", Err: err}
		}
	}

	sess := &model.Session{
		GameID:     gameID,
		SessionID:  uuid.NewString(),
		PlayerName: playerName,
		JoinedAt:   now,
	}
	m.sync.StartSession(sess)
	if err := m.sync.Reload(ctx, gameID, playerName); err != nil {
		return nil, err
	}
	if err := m.sync.Subscribe(ctx); err != nil {
		return nil, err
	}

	m.logger.Info("joined game",
		slog.String("game_id", string(gameID)),
		slog.String("player", playerName))
	return sess, nil
}

// Reset tears down the current session and all local state
func (m *Manager) Reset() {
	m.sync.Reset()
}

// Session returns the current session, or nil if none
func (m *Manager) Session() *model.Session {
	return m.sync.Session()
}
