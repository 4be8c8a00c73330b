package storage

import (
	"context"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
)

// Storage defines the interface for data persistence. All saves are
// upserts; lookups return the model sentinel errors when a row is absent.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// Roster operations. UpsertPlayer is keyed by (game, player): a
	// rejoin refreshes the join timestamp without duplicating the entry.
	UpsertPlayer(ctx context.Context, player *model.GamePlayer) error
	ListPlayers(ctx context.Context, gameID model.GameID) ([]*model.GamePlayer, error)

	// Score row operations, keyed by (game, player). SaveScore is a
	// full-row replace.
	SaveScore(ctx context.Context, rec *record.ScoreRecord) error
	GetScore(ctx context.Context, gameID model.GameID, playerName string) (*record.ScoreRecord, error)
	ListScores(ctx context.Context, gameID model.GameID) ([]*record.ScoreRecord, error)

	// Ping verifies the backing store is reachable
	Ping(ctx context.Context) error
}
