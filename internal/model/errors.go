package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// ErrGameNotFound is returned when the requested game does not exist
	// or is no longer active
	ErrGameNotFound = errors.New("game not found")

	// ErrScoreNotFound is returned when no score row exists for a
	// (game, player) pair. On lookup paths this is an expected
	// empty-result case, not a failure.
	ErrScoreNotFound = errors.New("score row not found")

	// ErrNoSession is returned when an operation needs an established
	// game/player identity and none exists
	ErrNoSession = errors.New("no active session")

	// Edit-boundary validation errors
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidScore    = errors.New("invalid score value")
	ErrInvalidName     = errors.New("invalid player name")
)

// PersistenceError wraps a store failure on a write that must succeed,
// such as creating a game or provisioning a score row. Operations that
// return it abort without compensating cleanup, so callers must treat
// the overall state as unknown.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
