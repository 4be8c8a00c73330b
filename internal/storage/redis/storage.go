package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Roster operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.GamePlayer) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := rosterKey(player.GameID)

	// HSet gives us upsert-on-conflict per player name
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, player.PlayerName, data)
	pipe.Expire(ctx, key, s.cfg.GameTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context, gameID model.GameID) ([]*model.GamePlayer, error) {
	entries, err := s.client.HGetAll(ctx, rosterKey(gameID)).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.GamePlayer, 0, len(entries))
	for _, data := range entries {
		var player model.GamePlayer
		if err := json.Unmarshal([]byte(data), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	// Hash iteration order is arbitrary; present join order
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
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := scoreKey(rec.GameID, rec.PlayerName)
	indexKey := scoresForGameIndexKey(rec.GameID)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.GameTTL)
	pipe.SAdd(ctx, indexKey, key)
	pipe.Expire(ctx, indexKey, s.cfg.GameTTL) // Keep index TTL in sync
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetScore(ctx context.Context, gameID model.GameID, playerName string) (*record.ScoreRecord, error) {
	data, err := s.client.Get(ctx, scoreKey(gameID, playerName)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	var rec record.ScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) ListScores(ctx context.Context, gameID model.GameID) ([]*record.ScoreRecord, error) {
	indexKey := scoresForGameIndexKey(gameID)

	scoreKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(scoreKeys) == 0 {
		return []*record.ScoreRecord{}, nil
	}

	values, err := s.client.MGet(ctx, scoreKeys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*record.ScoreRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Row may have expired
		}
		var rec record.ScoreRecord
		if err := json.Unmarshal([]byte(val.(string)), &rec); err != nil {
			continue // Skip invalid data
		}
		scores = append(scores, &rec)
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].PlayerName < scores[j].PlayerName
	})

	return scores, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
