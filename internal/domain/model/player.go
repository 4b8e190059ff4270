// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"

	"github.com/tbekker/xscout/internal/domain/catalog"
)

// Age bounds accepted from the dataset. Anything outside is a malformed
// record and fails the whole load.
const (
	minAge = 15
	maxAge = 50
)

// Position is the simplified position bucket assigned by the data pipeline.
type Position string

// Valid positions.
const (
	Forward    Position = "FW"
	Midfielder Position = "MF"
	Defender   Position = "DF"
	Goalkeeper Position = "GK"
)

// ParsePosition validates a position string from the dataset or a filter.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToUpper(strings.TrimSpace(s))) {
	case Forward:
		return Forward, nil
	case Midfielder:
		return Midfielder, nil
	case Defender:
		return Defender, nil
	case Goalkeeper:
		return Goalkeeper, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Player is one row of the scouting pool. Constructed once from the dataset
// at load time; Overall is attached immediately after construction and the
// struct is treated as frozen for the rest of the session. Nothing outside
// the loader may mutate it.
type Player struct {
	ID       int
	Name     string
	Position Position
	Age      int
	Minutes  int
	Metrics  catalog.Vector
	Overall  int
}

// Record mirrors one entry of the players.json dataset. Metric fields the
// pipeline omitted decode to 0; absent values always read as 0, never as a
// sentinel.
type Record struct {
	PlayerID      int    `json:"player_id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Age           int    `json:"age"`
	MinutesPlayed int    `json:"minutes_played"`

	ShotsP90       float64 `json:"shots_p90"`
	XGP90          float64 `json:"xg_p90"`
	ShotConversion float64 `json:"shot_conversion"`
	ProgPassesP90  float64 `json:"prog_passes_p90"`
	PassCompletion float64 `json:"pass_completion"`
	KeyPassesP90   float64 `json:"key_passes_p90"`
	DribblesP90    float64 `json:"dribbles_p90"`
	PressuresP90   float64 `json:"pressures_p90"`
	PressSuccess   float64 `json:"press_success"`
	AerialWinRate  float64 `json:"aerial_win_rate"`
	DistanceP90    float64 `json:"distance_p90"`
}

// Vector assembles the fixed-shape metric vector from the wire fields.
func (r Record) Vector() catalog.Vector {
	var v catalog.Vector
	v[catalog.ShotsP90] = r.ShotsP90
	v[catalog.XGP90] = r.XGP90
	v[catalog.ShotConversion] = r.ShotConversion
	v[catalog.ProgPassesP90] = r.ProgPassesP90
	v[catalog.PassCompletion] = r.PassCompletion
	v[catalog.KeyPassesP90] = r.KeyPassesP90
	v[catalog.DribblesP90] = r.DribblesP90
	v[catalog.PressuresP90] = r.PressuresP90
	v[catalog.PressSuccess] = r.PressSuccess
	v[catalog.AerialWinRate] = r.AerialWinRate
	v[catalog.DistanceP90] = r.DistanceP90
	return v
}

// Validate rejects malformed dataset rows. A negative metric value means the
// upstream normalization contract was broken, so the record is refused
// rather than clamped away silently.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: missing name (player_id=%d)", ErrInvalidRecord, r.PlayerID)
	}
	if r.PlayerID <= 0 {
		return fmt.Errorf("%w: %q has no player_id", ErrInvalidRecord, r.Name)
	}
	if _, err := ParsePosition(r.Position); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecord, r.Name, err)
	}
	if r.Age < minAge || r.Age > maxAge {
		return fmt.Errorf("%w: %q has implausible age %d", ErrInvalidRecord, r.Name, r.Age)
	}
	if r.MinutesPlayed < 0 {
		return fmt.Errorf("%w: %q has negative minutes", ErrInvalidRecord, r.Name)
	}
	for _, k := range catalog.Metrics() {
		if r.Vector().Get(k) < 0 {
			return fmt.Errorf("%w: %q has negative %s", ErrInvalidRecord, r.Name, k)
		}
	}
	return nil
}

// ToPlayer converts a validated record into a Player. Overall is left at
// zero; the loader attaches it in its one-time rating pass.
func (r Record) ToPlayer() (*Player, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	pos, _ := ParsePosition(r.Position)
	return &Player{
		ID:       r.PlayerID,
		Name:     r.Name,
		Position: pos,
		Age:      r.Age,
		Minutes:  r.MinutesPlayed,
		Metrics:  r.Vector(),
	}, nil
}
