// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// RolesHandler handles the /roles routes.
type RolesHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewRolesHandler creates a new roles handler.
func NewRolesHandler(deps Dependencies, maxLimit int) *RolesHandler {
	return &RolesHandler{deps: deps, maxLimit: maxLimit}
}

// HandleList handles GET /roles requests.
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Roles(r.Context()))
}

// HandleLeaderboard handles GET /roles/{name}/leaderboard?limit=N requests.
// limit defaults to the configured maximum.
func (h *RolesHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_role_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/roles/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "leaderboard" {
		http.NotFound(w, r)
		return
	}

	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if limit > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = limit
	}

	entries, err := h.deps.RoleLeaderboard(r.Context(), parts[0], n)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
