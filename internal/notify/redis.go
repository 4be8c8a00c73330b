package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
)

// RedisNotifier implements the notifier over Redis pub/sub with one
// channel per game. Redis pub/sub is fire-and-forget, which matches the
// transport contract: best-effort, no replay for late subscribers.
type RedisNotifier struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisNotifier creates a notifier on an existing Redis client
func NewRedisNotifier(client *redis.Client, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client: client,
		logger: logger.With(slog.String("component", "notify")),
	}
}

// Ensure RedisNotifier implements the interface
var _ Notifier = (*RedisNotifier)(nil)

// scoreChannel returns the pub/sub channel for a game's score changes
func scoreChannel(gameID model.GameID) string {
	return fmt.Sprintf("yzgame:scores:%s", gameID)
}

func (n *RedisNotifier) PublishScoreChange(ctx context.Context, rec *record.ScoreRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return n.client.Publish(ctx, scoreChannel(rec.GameID), data).Err()
}

func (n *RedisNotifier) SubscribeScoreChanges(ctx context.Context, gameID model.GameID, handler Handler) (Subscription, error) {
	pubsub := n.client.Subscribe(ctx, scoreChannel(gameID))

	// Wait for the subscription to be confirmed before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	go func() {
		for msg := range pubsub.Channel() {
			var rec record.ScoreRecord
			if err := json.Unmarshal([]byte(msg.Payload), &rec); err != nil {
				n.logger.Warn("dropping malformed score change event",
					slog.String("game_id", string(gameID)),
					slog.String("error", err.Error()))
				continue
			}
			handler(&rec)
		}
	}()

	return &redisSub{pubsub: pubsub}, nil
}

type redisSub struct {
	pubsub *redis.PubSub
}

// Close tears down the subscription; the delivery goroutine exits when
// the pub/sub channel closes
func (s *redisSub) Close() error {
	return s.pubsub.Close()
}
