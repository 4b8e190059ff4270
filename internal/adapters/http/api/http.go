// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tbekker/xscout/internal/adapters/repository"
	service "github.com/tbekker/xscout/internal/app"
	"github.com/tbekker/xscout/internal/domain/catalog"
	"github.com/tbekker/xscout/internal/domain/scoring"
	"github.com/tbekker/xscout/internal/domain/similarity"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Players(ctx context.Context) []service.PlayerSummary
	Player(ctx context.Context, id int) (service.PlayerDetail, error)
	Radar(ctx context.Context, id int) ([]service.AxisValue, error)
	TopRoles(ctx context.Context, id int) ([]scoring.FitResult, error)
	Roles(ctx context.Context) []service.RoleInfo
	RoleLeaderboard(ctx context.Context, roleName string, n int) ([]scoring.FitResult, error)
	Similar(ctx context.Context, id int, f similarity.Filters, n int) (similarity.Shortlist, error)
}

// Limits caps client-supplied result sizes.
type Limits struct {
	MaxLeaderboard int
	MaxSimilar     int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	playersHandler *PlayersHandler
	rolesHandler   *RolesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, limits Limits) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		playersHandler: NewPlayersHandler(deps, limits.MaxSimilar),
		rolesHandler:   NewRolesHandler(deps, limits.MaxLeaderboard),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayer, "player"))
	mux.HandleFunc("/roles", MetricsMiddleware(s.rolesHandler.HandleList, "roles"))
	mux.HandleFunc("/roles/", MetricsMiddleware(s.rolesHandler.HandleLeaderboard, "role_leaderboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates engine errors to their HTTP shape: unknown
// player or role is 404, a rejected filter is 400, anything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, catalog.ErrUnknownRole):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, similarity.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, "invalid_filter", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
