package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/yahtzeegame-go/internal/middleware"
	"github.com/mcoot/yahtzeegame-go/internal/services/roster"
	"github.com/mcoot/yahtzeegame-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Storage storage.Storage
	Roster  *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := &handler{
		storage: cfg.Storage,
		roster:  cfg.Roster,
		logger:  cfg.Logger,
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", h.health).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/players", h.listPlayers).Methods(http.MethodGet)

	return r
}
