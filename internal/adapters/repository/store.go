// Package repository defines the read-only player pool store and errors.
package repository

import (
	"context"

	"github.com/tbekker/xscout/internal/domain/model"
)

// Store provides read access to the player pool. The pool is the single
// source of truth for the session: built once at load time, frozen after the
// overall-attachment pass, never mutated by any engine.
type Store interface {
	// Player returns the profile for an id.
	// Returns ErrNotFound if the player is unknown.
	Player(ctx context.Context, id int) (*model.Player, error)

	// List returns every player in canonical order (alphabetical by name,
	// established at load time). The ranking tie-break depends on this order.
	List(ctx context.Context) []*model.Player

	// Count returns the number of players in the pool.
	Count(ctx context.Context) int
}
