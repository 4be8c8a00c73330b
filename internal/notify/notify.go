// Package notify is the change-notification transport: a best-effort,
// at-least-once push channel keyed by game id. Every save of a score row
// is published with the row's full new field set; subscribers receive no
// ordering or exactly-once guarantee and are expected to reload
// authoritative state rather than apply deltas.
package notify

import (
	"context"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
)

// Handler receives the full changed score row for a subscribed game.
// Handlers must not mutate the record.
type Handler func(rec *record.ScoreRecord)

// Subscription is a live per-game subscription. Closing it stops delivery.
type Subscription interface {
	Close() error
}

// Notifier publishes and subscribes to score-row changes
type Notifier interface {
	PublishScoreChange(ctx context.Context, rec *record.ScoreRecord) error
	SubscribeScoreChanges(ctx context.Context, gameID model.GameID, handler Handler) (Subscription, error)
}
