package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:        "GAME1234",
		CreatedBy: "alice",
		Status:    model.GameStatusActive,
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, "GAME1234")
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestUpsertPlayerAndListInJoinOrder() {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.UpsertPlayer(s.ctx, &model.GamePlayer{
		GameID: "G1", PlayerName: "bob", JoinedAt: base.Add(time.Minute),
	}))
	s.Require().NoError(s.storage.UpsertPlayer(s.ctx, &model.GamePlayer{
		GameID: "G1", PlayerName: "alice", JoinedAt: base,
	}))

	players, err := s.storage.ListPlayers(s.ctx, "G1")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("alice", players[0].PlayerName)
	s.Equal("bob", players[1].PlayerName)
}

func (s *StorageSuite) TestUpsertPlayerDoesNotDuplicate() {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.UpsertPlayer(s.ctx, &model.GamePlayer{
		GameID: "G1", PlayerName: "alice", JoinedAt: base,
	}))
	s.Require().NoError(s.storage.UpsertPlayer(s.ctx, &model.GamePlayer{
		GameID: "G1", PlayerName: "alice", JoinedAt: base.Add(time.Hour),
	}))

	players, err := s.storage.ListPlayers(s.ctx, "G1")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(base.Add(time.Hour), players[0].JoinedAt)
}

func (s *StorageSuite) TestSaveAndGetScore() {
	rec := record.New("G1", "alice", time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	ones := 3
	rec.Ones = &ones
	rec.ScratchedCategories = []string{"chance"}

	s.Require().NoError(s.storage.SaveScore(s.ctx, rec))

	got, err := s.storage.GetScore(s.ctx, "G1", "alice")
	s.Require().NoError(err)
	s.Equal(rec, got)
}

func (s *StorageSuite) TestGetScoreNotFound() {
	_, err := s.storage.GetScore(s.ctx, "G1", "nobody")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestSaveScoreIsFullRowReplace() {
	rec := record.New("G1", "alice", time.Now().UTC())
	ones := 3
	rec.Ones = &ones
	s.Require().NoError(s.storage.SaveScore(s.ctx, rec))

	replacement := record.New("G1", "alice", time.Now().UTC())
	replacement.ScratchedCategories = []string{"ones"}
	s.Require().NoError(s.storage.SaveScore(s.ctx, replacement))

	got, err := s.storage.GetScore(s.ctx, "G1", "alice")
	s.Require().NoError(err)
	s.Nil(got.Ones)
	s.Equal([]string{"ones"}, got.ScratchedCategories)
}

func (s *StorageSuite) TestListScoresForGame() {
	now := time.Now().UTC()
	s.Require().NoError(s.storage.SaveScore(s.ctx, record.New("G1", "bob", now)))
	s.Require().NoError(s.storage.SaveScore(s.ctx, record.New("G1", "alice", now)))
	s.Require().NoError(s.storage.SaveScore(s.ctx, record.New("G2", "carol", now)))

	scores, err := s.storage.ListScores(s.ctx, "G1")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal("alice", scores[0].PlayerName)
	s.Equal("bob", scores[1].PlayerName)
}

func (s *StorageSuite) TestListScoresEmptyGame() {
	scores, err := s.storage.ListScores(s.ctx, "EMPTY")
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
