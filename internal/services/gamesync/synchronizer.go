// Package gamesync keeps the local scorecard snapshot converging with
// the persisted store and propagates peer edits. Each session owns
// exactly one synchronizer: it is the sole writer path for the local
// player's row and the sole reader path for peer rows.
package gamesync

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/yahtzeegame-go/internal/dependencies/clock"
	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/notify"
	"github.com/mcoot/yahtzeegame-go/internal/record"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// Synchronizer owns the session's local scorecard plus reloaded copies
// of peer cards, and drives save-on-mutation / load-on-notification.
// The convergence model is last-writer-wins per (game, player) row.
type Synchronizer struct {
	storage  storage.Storage
	notifier notify.Notifier
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	session *model.Session
	card    *model.Scorecard
	peers   map[string]*model.Scorecard
	sub     notify.Subscription

	// onPeerChange, if set, is invoked after a peer's card has been
	// reloaded from a change notification
	onPeerChange func(playerName string)
}

// New creates a synchronizer with a blank local card and no identity.
// Edits made before a session is established stay local; they start
// persisting once an identity exists.
func New(store storage.Storage, notifier notify.Notifier, clk clock.Clock, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{
		storage:  store,
		notifier: notifier,
		clock:    clk,
		logger:   logger.With(slog.String("component", "gamesync")),
		card:     model.NewScorecard("", ""),
		peers:    make(map[string]*model.Scorecard),
	}
}

// OnPeerChange registers a callback for reloaded peer rows. Set it
// before subscribing.
func (s *Synchronizer) OnPeerChange(fn func(playerName string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPeerChange = fn
}

// StartSession binds a game/player identity. Values already entered on
// the local card are kept and rebound to the new identity; peer state
// from any previous game is dropped.
func (s *Synchronizer) StartSession(sess *model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.card.GameID = sess.GameID
	s.card.PlayerName = sess.PlayerName
	s.peers = make(map[string]*model.Scorecard)
}

// Reset destroys the session: the subscription is torn down and all
// local state reverts to a blank card
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.session = nil
	s.card = model.NewScorecard("", "")
	s.peers = make(map[string]*model.Scorecard)
	s.mu.Unlock()

	if sub != nil {
		_ = sub.Close()
	}
}

// Session returns the current session, or nil if none is established
func (s *Synchronizer) Session() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Card returns a copy of the local player's card
func (s *Synchronizer) Card() *model.Scorecard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.card.Clone()
}

// Peer returns a copy of a peer's last-reloaded card
func (s *Synchronizer) Peer(playerName string) (*model.Scorecard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.peers[playerName]
	if !ok {
		return nil, false
	}
	return card.Clone(), true
}

// SetScore records a numeric dice total for a category and autosaves.
// Negative totals and achievement-style categories are rejected here,
// at the edit boundary; the total calculators never validate.
func (s *Synchronizer) SetScore(ctx context.Context, cat model.Category, points int) error {
	if cat.IsFlag() {
		return model.ErrInvalidCategory
	}
	if points < 0 {
		return model.ErrInvalidScore
	}
	s.applyEdit(ctx, cat, model.ScoredNumber(points))
	return nil
}

// SetAchieved records an achievement-style category as achieved or
// missed and autosaves
func (s *Synchronizer) SetAchieved(ctx context.Context, cat model.Category, achieved bool) error {
	if !cat.IsFlag() {
		return model.ErrInvalidCategory
	}
	s.applyEdit(ctx, cat, model.ScoredFlag(achieved))
	return nil
}

// Scratch forfeits a category and autosaves
func (s *Synchronizer) Scratch(ctx context.Context, cat model.Category) {
	s.applyEdit(ctx, cat, model.Scratched())
}

// Clear reverts a category to not-yet-played and autosaves
func (s *Synchronizer) Clear(ctx context.Context, cat model.Category) {
	s.applyEdit(ctx, cat, model.Empty())
}

// SetYahtzeeBonus sets the bonus yahtzee count and autosaves
func (s *Synchronizer) SetYahtzeeBonus(ctx context.Context, count int) error {
	if count < 0 {
		return model.ErrInvalidScore
	}
	s.mu.Lock()
	s.card.YahtzeeBonusCount = count
	s.card.UpdatedAt = s.clock.Now()
	sess, card := s.session, s.card.Clone()
	s.mu.Unlock()

	s.persist(ctx, sess, card)
	return nil
}

func (s *Synchronizer) applyEdit(ctx context.Context, cat model.Category, v model.CategoryValue) {
	s.mu.Lock()
	s.card.SetValue(cat, v)
	s.card.UpdatedAt = s.clock.Now()
	sess, card := s.session, s.card.Clone()
	s.mu.Unlock()

	s.persist(ctx, sess, card)
}

// persist upserts the full encoded row and publishes the change. It is
// a no-op without an established identity. Failures are logged and
// swallowed: a failed autosave must never interrupt the player, and the
// next successful save re-sends the whole now-current row.
func (s *Synchronizer) persist(ctx context.Context, sess *model.Session, card *model.Scorecard) {
	if sess == nil {
		return
	}

	rec := record.Encode(card)
	if err := s.storage.SaveScore(ctx, rec); err != nil {
		s.logger.Warn("autosave failed",
			slog.String("game_id", string(sess.GameID)),
			slog.String("player", sess.PlayerName),
			slog.String("error", err.Error()))
		return
	}

	if err := s.notifier.PublishScoreChange(ctx, rec); err != nil {
		s.logger.Warn("score change publish failed",
			slog.String("game_id", string(sess.GameID)),
			slog.String("player", sess.PlayerName),
			slog.String("error", err.Error()))
	}
}

// Save re-persists the current local card. Used after a session is
// established to flush edits made before identity existed.
func (s *Synchronizer) Save(ctx context.Context) {
	s.mu.Lock()
	sess, card := s.session, s.card.Clone()
	s.mu.Unlock()
	s.persist(ctx, sess, card)
}

// Reload fetches and decodes the persisted row for a (game, player)
// pair and replaces the matching in-memory card wholesale. A missing
// row leaves local state untouched: the player simply has not been
// provisioned yet.
func (s *Synchronizer) Reload(ctx context.Context, gameID model.GameID, playerName string) error {
	rec, err := s.storage.GetScore(ctx, gameID, playerName)
	if errors.Is(err, model.ErrScoreNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	card := record.Decode(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil && gameID == s.session.GameID && playerName == s.session.PlayerName {
		s.card = card
	} else {
		s.peers[playerName] = card
	}
	return nil
}

// Subscribe establishes the change-notification subscription for the
// session's game. Only one subscription is live per session: any prior
// one is torn down first.
func (s *Synchronizer) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	sess := s.session
	prior := s.sub
	s.sub = nil
	s.mu.Unlock()

	if prior != nil {
		_ = prior.Close()
	}
	if sess == nil {
		return model.ErrNoSession
	}

	sub, err := s.notifier.SubscribeScoreChanges(ctx, sess.GameID, func(rec *record.ScoreRecord) {
		s.handleScoreChange(context.Background(), rec)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()
	return nil
}

// handleScoreChange processes one incoming notification. Self-writes
// are ignored: the echo of our own save may race ahead of or behind
// pending local edits and must never clobber in-flight input. Any other
// player's event triggers one reload of the authoritative row, so
// out-of-order delivery is harmless.
func (s *Synchronizer) handleScoreChange(ctx context.Context, rec *record.ScoreRecord) {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()

	if sess == nil || rec.GameID != sess.GameID {
		return
	}
	if rec.PlayerName == sess.PlayerName {
		return
	}

	if err := s.Reload(ctx, rec.GameID, rec.PlayerName); err != nil {
		s.logger.Warn("reload after change notification failed",
			slog.String("game_id", string(rec.GameID)),
			slog.String("player", rec.PlayerName),
			slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	fn := s.onPeerChange
	s.mu.Unlock()
	if fn != nil {
		fn(rec.PlayerName)
	}
}
