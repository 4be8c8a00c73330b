// Package roster assembles the joined view of a game: every registered
// player paired with their decoded scorecard.
package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// Entry pairs a roster row with the player's current card
type Entry struct {
	Player *model.GamePlayer
	Card   *model.Scorecard
}

// Service lists the players of a game together with their cards
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewService creates a roster service
func NewService(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger.With(slog.String("component", "roster")),
	}
}

// ListPlayers returns one entry per registered player in join order. A
// player whose score row has not been provisioned yet gets a blank
// card rather than being dropped from the roster.
func (s *Service) ListPlayers(ctx context.Context, gameID model.GameID) ([]*Entry, error) {
	players, err := s.storage.ListPlayers(ctx, gameID)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(players))
	for _, player := range players {
		rec, err := s.storage.GetScore(ctx, gameID, player.PlayerName)
		if errors.Is(err, model.ErrScoreNotFound) {
			entries = append(entries, &Entry{
				Player: player,
				Card:   model.NewScorecard(gameID, player.PlayerName),
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, &Entry{
			Player: player,
			Card:   record.Decode(rec),
		})
	}
	return entries, nil
}
