package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzeegame-go/internal/record"
)

type BrokerSuite struct {
	suite.Suite
	broker *Broker
	ctx    context.Context
}

func TestBrokerSuite(t *testing.T) {
	suite.Run(t, new(BrokerSuite))
}

func (s *BrokerSuite) SetupTest() {
	s.broker = NewBroker()
	s.ctx = context.Background()
}

func (s *BrokerSuite) TestPublishDeliversToSubscriber() {
	var got []*record.ScoreRecord
	_, err := s.broker.SubscribeScoreChanges(s.ctx, "G1", func(rec *record.ScoreRecord) {
		got = append(got, rec)
	})
	s.Require().NoError(err)

	rec := record.New("G1", "alice", time.Now())
	s.Require().NoError(s.broker.PublishScoreChange(s.ctx, rec))

	s.Require().Len(got, 1)
	s.Equal("alice", got[0].PlayerName)
}

func (s *BrokerSuite) TestPublishScopedToGame() {
	calls := 0
	_, err := s.broker.SubscribeScoreChanges(s.ctx, "G1", func(*record.ScoreRecord) {
		calls++
	})
	s.Require().NoError(err)

	s.Require().NoError(s.broker.PublishScoreChange(s.ctx, record.New("G2", "bob", time.Now())))
	s.Zero(calls)
}

func (s *BrokerSuite) TestCloseStopsDelivery() {
	calls := 0
	sub, err := s.broker.SubscribeScoreChanges(s.ctx, "G1", func(*record.ScoreRecord) {
		calls++
	})
	s.Require().NoError(err)
	s.Require().NoError(sub.Close())

	s.Require().NoError(s.broker.PublishScoreChange(s.ctx, record.New("G1", "alice", time.Now())))
	s.Zero(calls)
	s.Zero(s.broker.SubscriberCount("G1"))
}

func (s *BrokerSuite) TestMultipleSubscribersAllReceive() {
	first, second := 0, 0
	_, err := s.broker.SubscribeScoreChanges(s.ctx, "G1", func(*record.ScoreRecord) { first++ })
	s.Require().NoError(err)
	_, err = s.broker.SubscribeScoreChanges(s.ctx, "G1", func(*record.ScoreRecord) { second++ })
	s.Require().NoError(err)

	s.Require().NoError(s.broker.PublishScoreChange(s.ctx, record.New("G1", "alice", time.Now())))
	s.Equal(1, first)
	s.Equal(1, second)
}
