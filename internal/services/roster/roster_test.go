package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage/memory"
	"github.com/mcoot/yahtzeegame-go/internal/testutil"
)

type RosterSuite struct {
	suite.Suite

	storage *memory.Storage
	service *Service
	now     time.Time
}

func (s *RosterSuite) SetupTest() {
	s.storage = memory.New()
	s.service = NewService(s.storage, testutil.NopLogger())
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RosterSuite) TestEmptyGame() {
	entries, err := s.service.ListPlayers(context.Background(), "ABCD1234")
	s.Require().NoError(err)
	s.Require().Empty(entries)
}

func (s *RosterSuite) TestPlayersInJoinOrder() {
	ctx := context.Background()

	s.Require().NoError(s.storage.UpsertPlayer(ctx, &model.GamePlayer{
		GameID: "ABCD1234", PlayerName: "bob", JoinedAt: s.now.Add(time.Minute),
	}))
	s.Require().NoError(s.storage.UpsertPlayer(ctx, &model.GamePlayer{
		GameID: "ABCD1234", PlayerName: "alice", JoinedAt: s.now,
	}))

	aliceRec := record.New("ABCD1234", "alice", s.now)
	nine := 9
	aliceRec.Threes = &nine
	s.Require().NoError(s.storage.SaveScore(ctx, aliceRec))
	s.Require().NoError(s.storage.SaveScore(ctx, record.New("ABCD1234", "bob", s.now)))

	entries, err := s.service.ListPlayers(ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Require().Equal("alice", entries[0].Player.PlayerName)
	s.Require().Equal("bob", entries[1].Player.PlayerName)
	s.Require().Equal(9, entries[0].Card.Value(model.CategoryThrees).Number())
	s.Require().True(entries[1].Card.Value(model.CategoryThrees).IsEmpty())
}

func (s *RosterSuite) TestUnprovisionedPlayerGetsBlankCard() {
	ctx := context.Background()

	s.Require().NoError(s.storage.UpsertPlayer(ctx, &model.GamePlayer{
		GameID: "ABCD1234", PlayerName: "carol", JoinedAt: s.now,
	}))

	entries, err := s.service.ListPlayers(ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().NotNil(entries[0].Card)
	s.Require().Equal("carol", entries[0].Card.PlayerName)
	for _, cat := range model.Categories() {
		s.Require().True(entries[0].Card.Value(cat).IsEmpty())
	}
}

func (s *RosterSuite) TestScopedToGame() {
	ctx := context.Background()

	s.Require().NoError(s.storage.UpsertPlayer(ctx, &model.GamePlayer{
		GameID: "ABCD1234", PlayerName: "alice", JoinedAt: s.now,
	}))
	s.Require().NoError(s.storage.UpsertPlayer(ctx, &model.GamePlayer{
		GameID: "ZZZZ9999", PlayerName: "mallory", JoinedAt: s.now,
	}))

	entries, err := s.service.ListPlayers(ctx, "ABCD1234")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().Equal("alice", entries[0].Player.PlayerName)
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterSuite))
}
