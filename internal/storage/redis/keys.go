package redis

import (
	"fmt"

	"github.com/mcoot/yahtzeegame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "yzgame"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// rosterKey returns the Redis key for the roster hash of a game.
// Hash fields are player names; values are JSON roster entries.
func rosterKey(id model.GameID) string {
	return fmt.Sprintf("%s:roster:%s", keyPrefix, id)
}

// scoreKey returns the Redis key for one (game, player) score row
func scoreKey(gameID model.GameID, playerName string) string {
	return fmt.Sprintf("%s:score:%s:%s", keyPrefix, gameID, playerName)
}

// scoresForGameIndexKey returns the Redis key for the SET of score rows
// belonging to a game
func scoresForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:scores_for_game:%s", keyPrefix, gameID)
}
