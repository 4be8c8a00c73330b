package model

import "time"

// Session is the process-local identity for one participant. It is never
// persisted: it lives from create/join until reset, and owns the local
// scorecard snapshot for its player.
type Session struct {
	GameID     GameID
	SessionID  string
	PlayerName string
	JoinedAt   time.Time
}
