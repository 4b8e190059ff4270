package repository

import (
	"context"
	"fmt"

	"github.com/tbekker/xscout/internal/domain/model"
)

// MemStore is the in-memory Store. It holds the players in canonical order
// plus an id index, and performs no locking: after construction nothing
// writes, so concurrent reads are safe.
type MemStore struct {
	players []*model.Player
	byID    map[int]*model.Player
}

// NewMemStore builds a store from players already in canonical order.
// Duplicate ids are refused: the id is the session-stable identity every
// computed association hangs off.
func NewMemStore(_ context.Context, players []*model.Player) (*MemStore, error) {
	byID := make(map[int]*model.Player, len(players))
	for _, p := range players {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: player_id %d", ErrDuplicateID, p.ID)
		}
		byID[p.ID] = p
	}
	return &MemStore{players: players, byID: byID}, nil
}

// Player returns the profile for an id.
func (s *MemStore) Player(_ context.Context, id int) (*model.Player, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: player_id %d", ErrNotFound, id)
	}
	return p, nil
}

// List returns the pool in canonical order. The slice is a fresh copy so a
// careless caller cannot disturb the tie-break order; the profiles themselves
// are shared and read-only.
func (s *MemStore) List(_ context.Context) []*model.Player {
	out := make([]*model.Player, len(s.players))
	copy(out, s.players)
	return out
}

// Count returns the pool size.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.players)
}
