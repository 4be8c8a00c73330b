package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzeegame-go/internal/model"
	"github.com/mcoot/yahtzeegame-go/internal/scoring"
	"github.com/mcoot/yahtzeegame-go/internal/services/roster"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

type handler struct {
	storage storage.Storage
	roster  *roster.Service
	logger  *slog.Logger
}

// Cell is the wire form of one category on a card. State is "empty",
// "scratched" or "scored"; value or achieved is set only when scored.
type Cell struct {
	State    string `json:"state"`
	Value    *int   `json:"value,omitempty"`
	Achieved *bool  `json:"achieved,omitempty"`
}

// Totals is the wire form of the computed section totals
type Totals struct {
	UpperSubtotal int `json:"upper_subtotal"`
	UpperBonus    int `json:"upper_bonus"`
	UpperTotal    int `json:"upper_total"`
	LowerTotal    int `json:"lower_total"`
	GrandTotal    int `json:"grand_total"`
}

// PlayerView is one roster entry with the player's card and totals
type PlayerView struct {
	Name              string                  `json:"name"`
	JoinedAt          time.Time               `json:"joined_at"`
	Categories        map[model.Category]Cell `json:"categories"`
	YahtzeeBonusCount int                     `json:"yahtzee_bonus_count"`
	Totals            Totals                  `json:"totals"`
}

// GamePlayersResponse is the response for the roster endpoint
type GamePlayersResponse struct {
	GameID  model.GameID  `json:"game_id"`
	Players []*PlayerView `json:"players"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameID := model.GameID(mux.Vars(r)["game_id"])

	if _, err := h.storage.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
			return
		}
		h.internalError(w, "load game", err)
		return
	}

	entries, err := h.roster.ListPlayers(ctx, gameID)
	if err != nil {
		h.internalError(w, "list players", err)
		return
	}

	resp := &GamePlayersResponse{
		GameID:  gameID,
		Players: make([]*PlayerView, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Players = append(resp.Players, playerView(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

func playerView(entry *roster.Entry) *PlayerView {
	cells := make(map[model.Category]Cell, len(model.Categories()))
	for _, cat := range model.Categories() {
		cells[cat] = cell(cat, entry.Card.Value(cat))
	}

	totals := scoring.ScoreCard(entry.Card)
	return &PlayerView{
		Name:              entry.Player.PlayerName,
		JoinedAt:          entry.Player.JoinedAt,
		Categories:        cells,
		YahtzeeBonusCount: entry.Card.YahtzeeBonusCount,
		Totals: Totals{
			UpperSubtotal: totals.Upper.Subtotal,
			UpperBonus:    totals.Upper.Bonus,
			UpperTotal:    totals.Upper.Total,
			LowerTotal:    totals.Lower,
			GrandTotal:    totals.Grand,
		},
	}
}

func cell(cat model.Category, v model.CategoryValue) Cell {
	switch {
	case v.IsScratched():
		return Cell{State: "scratched"}
	case v.IsScored() && cat.IsFlag():
		achieved := v.Flag()
		return Cell{State: "scored", Achieved: &achieved}
	case v.IsScored():
		value := v.Number()
		return Cell{State: "scored", Value: &value}
	default:
		return Cell{State: "empty"}
	}
}

func (h *handler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
