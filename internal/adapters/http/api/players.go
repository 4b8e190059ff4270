// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tbekker/xscout/internal/domain/similarity"
)

// PlayersHandler handles the /players routes.
type PlayersHandler struct {
	deps       Dependencies
	maxSimilar int
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies, maxSimilar int) *PlayersHandler {
	return &PlayersHandler{deps: deps, maxSimilar: maxSimilar}
}

// HandleList handles GET /players requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Players(r.Context()))
}

// HandlePlayer handles the /players/{id} subtree:
//
//	GET /players/{id}          -> full profile
//	GET /players/{id}/radar    -> radar axis values
//	GET /players/{id}/roles    -> top role fits
//	GET /players/{id}/similar  -> similarity shortlist
func (h *PlayersHandler) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/players/"), "/")
	id, err := strconv.Atoi(parts[0])
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case len(parts) == 1:
		h.detail(w, r, id)
	case len(parts) == 2 && parts[1] == "radar":
		h.radar(w, r, id)
	case len(parts) == 2 && parts[1] == "roles":
		h.roles(w, r, id)
	case len(parts) == 2 && parts[1] == "similar":
		h.similar(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) detail(w http.ResponseWriter, r *http.Request, id int) {
	p, err := h.deps.Player(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PlayersHandler) radar(w http.ResponseWriter, r *http.Request, id int) {
	axes, err := h.deps.Radar(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, axes)
}

func (h *PlayersHandler) roles(w http.ResponseWriter, r *http.Request, id int) {
	fits, err := h.deps.TopRoles(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fits)
}

func (h *PlayersHandler) similar(w http.ResponseWriter, r *http.Request, id int) {
	const op = "api.get_similar"
	q := r.URL.Query()

	f := similarity.Filters{Position: similarity.PositionAll}
	if pos := q.Get("position"); pos != "" {
		f.Position = pos
	}
	if ageStr := q.Get("max_age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		f.MaxAge = age
	}

	n := similarity.DefaultShortlistSize
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if limit > h.maxSimilar {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = limit
	}

	shortlist, err := h.deps.Similar(r.Context(), id, f, n)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shortlist)
}
