package sqlite

// Schema for the three collections. Applied idempotently on open.
const schema = `
CREATE TABLE IF NOT EXISTS games (
	id         TEXT PRIMARY KEY,
	created_by TEXT NOT NULL,
	status     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS game_players (
	game_id     TEXT NOT NULL,
	player_name TEXT NOT NULL,
	joined_at   TIMESTAMP NOT NULL,
	PRIMARY KEY (game_id, player_name)
);

CREATE TABLE IF NOT EXISTS game_scores (
	game_id             TEXT NOT NULL,
	player_name         TEXT NOT NULL,
	ones                INTEGER,
	twos                INTEGER,
	threes              INTEGER,
	fours               INTEGER,
	fives               INTEGER,
	sixes               INTEGER,
	three_of_a_kind     INTEGER,
	four_of_a_kind      INTEGER,
	full_house          INTEGER,
	small_straight      INTEGER,
	large_straight      INTEGER,
	yahtzee             INTEGER,
	chance              INTEGER,
	yahtzee_bonus_count INTEGER NOT NULL DEFAULT 0,
	scratched_categories TEXT NOT NULL DEFAULT '[]',
	updated_at          TIMESTAMP NOT NULL,
	PRIMARY KEY (game_id, player_name)
);
`
