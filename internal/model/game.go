package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusActive   GameStatus = "active"
	GameStatusFinished GameStatus = "finished"
)

// Game represents a shared scorecard session. A game owns one score row
// per joined player; there is no turn order and every player fills their
// own row independently.
type Game struct {
	ID        GameID
	CreatedBy string
	Status    GameStatus
	CreatedAt time.Time
}

// GamePlayer is a roster entry: one row per (game, player) pair,
// keyed by that pair and ordered by join time for display.
type GamePlayer struct {
	GameID     GameID
	PlayerName string
	JoinedAt   time.Time
}
