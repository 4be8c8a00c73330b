package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games   map[model.GameID]*model.Game
	players map[rowKey]*model.GamePlayer
	scores  map[rowKey]*record.ScoreRecord
}

type rowKey struct {
	gameID     model.GameID
	playerName string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:   make(map[model.GameID]*model.Game),
		players: make(map[rowKey]*model.GamePlayer),
		scores:  make(map[rowKey]*record.ScoreRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// Roster operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.GamePlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rowKey{gameID: player.GameID, playerName: player.PlayerName}
	s.players[key] = player
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context, gameID model.GameID) ([]*model.GamePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := []*model.GamePlayer{}
	for key, player := range s.players {
		if key.gameID == gameID {
			players = append(players, player)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		if !players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].JoinedAt.Before(players[j].JoinedAt)
		}
		return players[i].PlayerName < players[j].PlayerName
	})
	return players, nil
}

// Score row operations

func (s *Storage) SaveScore(ctx context.Context, rec *record.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rowKey{gameID: rec.GameID, playerName: rec.PlayerName}
	s.scores[key] = rec
	return nil
}

func (s *Storage) GetScore(ctx context.Context, gameID model.GameID, playerName string) (*record.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := rowKey{gameID: gameID, playerName: playerName}
	rec, ok := s.scores[key]
	if !ok {
		return nil, model.ErrScoreNotFound
	}
	return rec, nil
}

func (s *Storage) ListScores(ctx context.Context, gameID model.GameID) ([]*record.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := []*record.ScoreRecord{}
	for key, rec := range s.scores {
		if key.gameID == gameID {
			scores = append(scores, rec)
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].PlayerName < scores[j].PlayerName
	})
	return scores, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}
