package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// The tables mirror the persisted-store contract directly: per-category
// nullable columns plus a JSON-encoded scratched-categories column.
type Storage struct {
	db *sql.DB
}

// New opens (and creates if missing) a SQLite database at the given path
// and applies the schema
func New(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, created_by, status, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_by = excluded.created_by,
			status     = excluded.status,
			created_at = excluded.created_at`,
		game.ID, game.CreatedBy, game.Status, game.CreatedAt)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_by, status, created_at FROM games WHERE id = ?`, id).
		Scan(&game.ID, &game.CreatedBy, &game.Status, &game.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Roster operations

func (s *Storage) UpsertPlayer(ctx context.Context, player *model.GamePlayer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_players (game_id, player_name, joined_at)
		VALUES (?, ?, ?)
		ON CONFLICT(game_id, player_name) DO UPDATE SET
			joined_at = excluded.joined_at`,
		player.GameID, player.PlayerName, player.JoinedAt)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context, gameID model.GameID) ([]*model.GamePlayer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, player_name, joined_at FROM game_players
		WHERE game_id = ?
		ORDER BY joined_at, player_name`, gameID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	players := []*model.GamePlayer{}
	for rows.Next() {
		var player model.GamePlayer
		if err := rows.Scan(&player.GameID, &player.PlayerName, &player.JoinedAt); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	return players, rows.Err()
}

// Score row operations

func (s *Storage) SaveScore(ctx context.Context, rec *record.ScoreRecord) error {
	scratched, err := json.Marshal(rec.ScratchedCategories)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO game_scores (
			game_id, player_name,
			ones, twos, threes, fours, fives, sixes,
			three_of_a_kind, four_of_a_kind,
			full_house, small_straight, large_straight, yahtzee, chance,
			yahtzee_bonus_count, scratched_categories, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(game_id, player_name) DO UPDATE SET
			ones = excluded.ones,
			twos = excluded.twos,
			threes = excluded.threes,
			fours = excluded.fours,
			fives = excluded.fives,
			sixes = excluded.sixes,
			three_of_a_kind = excluded.three_of_a_kind,
			four_of_a_kind = excluded.four_of_a_kind,
			full_house = excluded.full_house,
			small_straight = excluded.small_straight,
			large_straight = excluded.large_straight,
			yahtzee = excluded.yahtzee,
			chance = excluded.chance,
			yahtzee_bonus_count = excluded.yahtzee_bonus_count,
			scratched_categories = excluded.scratched_categories,
			updated_at = excluded.updated_at`,
		rec.GameID, rec.PlayerName,
		rec.Ones, rec.Twos, rec.Threes, rec.Fours, rec.Fives, rec.Sixes,
		rec.ThreeOfAKind, rec.FourOfAKind,
		rec.FullHouse, rec.SmallStraight, rec.LargeStraight, rec.Yahtzee, rec.Chance,
		rec.YahtzeeBonusCount, string(scratched), rec.UpdatedAt)
	return err
}

func (s *Storage) GetScore(ctx context.Context, gameID model.GameID, playerName string) (*record.ScoreRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT game_id, player_name,
			ones, twos, threes, fours, fives, sixes,
			three_of_a_kind, four_of_a_kind,
			full_house, small_straight, large_straight, yahtzee, chance,
			yahtzee_bonus_count, scratched_categories, updated_at
		FROM game_scores
		WHERE game_id = ? AND player_name = ?`, gameID, playerName)

	rec, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrScoreNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Storage) ListScores(ctx context.Context, gameID model.GameID) ([]*record.ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_id, player_name,
			ones, twos, threes, fours, fives, sixes,
			three_of_a_kind, four_of_a_kind,
			full_house, small_straight, large_straight, yahtzee, chance,
			yahtzee_bonus_count, scratched_categories, updated_at
		FROM game_scores
		WHERE game_id = ?
		ORDER BY player_name`, gameID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	scores := []*record.ScoreRecord{}
	for rows.Next() {
		rec, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, rec)
	}
	return scores, rows.Err()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanScore(row scanner) (*record.ScoreRecord, error) {
	var rec record.ScoreRecord
	var scratched string

	err := row.Scan(
		&rec.GameID, &rec.PlayerName,
		&rec.Ones, &rec.Twos, &rec.Threes, &rec.Fours, &rec.Fives, &rec.Sixes,
		&rec.ThreeOfAKind, &rec.FourOfAKind,
		&rec.FullHouse, &rec.SmallStraight, &rec.LargeStraight, &rec.Yahtzee, &rec.Chance,
		&rec.YahtzeeBonusCount, &scratched, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(scratched), &rec.ScratchedCategories); err != nil {
		return nil, fmt.Errorf("decode scratched categories: %w", err)
	}
	return &rec, nil
}
