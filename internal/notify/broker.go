package notify

import (
	"context"
	"sync"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
)

// Broker is an in-process implementation of the notifier, used for tests
// and single-process play. Delivery is synchronous with Publish.
type Broker struct {
	mu   sync.RWMutex
	subs map[model.GameID]map[*brokerSub]struct{}
}

// NewBroker creates a new in-process broker
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[model.GameID]map[*brokerSub]struct{}),
	}
}

// Ensure Broker implements the interface
var _ Notifier = (*Broker)(nil)

func (b *Broker) PublishScoreChange(ctx context.Context, rec *record.ScoreRecord) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[rec.GameID]))
	for sub := range b.subs[rec.GameID] {
		handlers = append(handlers, sub.handler)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(rec)
	}
	return nil
}

func (b *Broker) SubscribeScoreChanges(ctx context.Context, gameID model.GameID, handler Handler) (Subscription, error) {
	sub := &brokerSub{broker: b, gameID: gameID, handler: handler}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[gameID] == nil {
		b.subs[gameID] = make(map[*brokerSub]struct{})
	}
	b.subs[gameID][sub] = struct{}{}
	return sub, nil
}

// SubscriberCount returns the number of live subscriptions for a game
func (b *Broker) SubscriberCount(gameID model.GameID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[gameID])
}

type brokerSub struct {
	broker  *Broker
	gameID  model.GameID
	handler Handler
}

func (s *brokerSub) Close() error {
	s.broker.mu.Lock()
	defer s.broker.mu.Unlock()
	delete(s.broker.subs[s.gameID], s)
	if len(s.broker.subs[s.gameID]) == 0 {
		delete(s.broker.subs, s.gameID)
	}
	return nil
}
