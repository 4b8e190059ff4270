// Package similarity scores how statistically close two players are and
// builds filtered shortlists against a reference player.
package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/tbekker/xscout/internal/domain/model"
	"github.com/tbekker/xscout/internal/domain/rank"
)

// metricCeiling is the upper bound of the normalized metric scale.
const metricCeiling = 100.0

// DefaultShortlistSize is how many candidates FindSimilar returns when the
// caller does not ask for a specific size.
const DefaultShortlistSize = 5

// PositionAll disables the position filter.
const PositionAll = "all"

// Result is one scored candidate. Ephemeral, never persisted.
type Result struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Score    int    `json:"similarity"`
}

// Shortlist is the outcome of one FindSimilar computation. ID is assigned
// per computation so an empty Results slice is still distinguishable from
// "no computation performed" (the zero Shortlist).
type Shortlist struct {
	ID      string   `json:"query_id"`
	Filters Filters  `json:"filters"`
	Results []Result `json:"results"`
}

// Filters restrict the candidate pool. Filters are AND-composed and never
// silently skipped: an unrecognized value is a caller error.
type Filters struct {
	// Position keeps only exact matches; PositionAll disables it.
	Position string `json:"position"`
	// MaxAge is an inclusive age ceiling; 0 means no ceiling.
	MaxAge int `json:"max_age"`
}

// Validate rejects filter values the engine does not recognize.
func (f Filters) Validate() error {
	_, err := f.normalize()
	return err
}

// normalize validates the filters and canonicalizes the position through
// ParsePosition, so a filter that validates also matches: "fw" and "FW"
// select the same candidates.
func (f Filters) normalize() (Filters, error) {
	if f.Position != PositionAll {
		pos, err := model.ParsePosition(f.Position)
		if err != nil {
			return Filters{}, fmt.Errorf("%w: position %q", ErrInvalidFilter, f.Position)
		}
		f.Position = string(pos)
	}
	if f.MaxAge < 0 {
		return Filters{}, fmt.Errorf("%w: max_age %d", ErrInvalidFilter, f.MaxAge)
	}
	return f, nil
}

func (f Filters) match(p *model.Player) bool {
	if f.Position != PositionAll && string(p.Position) != f.Position {
		return false
	}
	if f.MaxAge > 0 && p.Age > f.MaxAge {
		return false
	}
	return true
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWorkers sets the shard count for scoring large candidate pools.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Engine computes similarity scores over the full metric catalog.
type Engine struct {
	workers int
}

// NewEngine creates a similarity engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score is the similarity between two players in [0, 100]. It is symmetric,
// and Score(p, p) is always 100.
func (e *Engine) Score(a, b *model.Player) int {
	return ScoreVectors(a.Metrics[:], b.Metrics[:])
}

// ScoreVectors computes normalized inverse Euclidean similarity between two
// equal-length metric vectors. The calibration constant is the diagonal of
// the len(a)-dimensional 0-100 hypercube, derived from the vectors at call
// time so it always matches the live catalog size. Inputs inside [0, 100]
// cannot exceed that diagonal; the result is clamped to [0, 100] regardless.
func ScoreVectors(a, b []float64) int {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	dist := floats.Distance(a, b, 2)
	maxDist := math.Sqrt(float64(len(a)) * metricCeiling * metricCeiling)
	score := int(math.Round((1 - dist/maxDist) * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// FindSimilar scores every pool candidate against ref and returns the topN
// most similar that pass the filters. The reference player is always
// excluded by identifier. Candidates keep the pool's alphabetical order on
// ties. An empty shortlist after filtering is a valid outcome, not an error.
func (e *Engine) FindSimilar(ctx context.Context, ref *model.Player, pool []*model.Player, f Filters, topN int) (Shortlist, error) {
	f, err := f.normalize()
	if err != nil {
		return Shortlist{}, err
	}
	if topN <= 0 {
		topN = DefaultShortlistSize
	}

	candidates := make([]*model.Player, 0, len(pool))
	for _, p := range pool {
		if p.ID == ref.ID {
			continue
		}
		if f.match(p) {
			candidates = append(candidates, p)
		}
	}

	scores, err := rank.ScoreAll(ctx, candidates, e.workers, func(p *model.Player) float64 {
		return float64(e.Score(ref, p))
	})
	if err != nil {
		return Shortlist{}, err
	}

	results := make([]Result, len(candidates))
	for i, p := range candidates {
		results[i] = Result{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: string(p.Position),
			Age:      p.Age,
			Score:    int(scores[i]),
		}
	}
	return Shortlist{
		ID:      uuid.NewString(),
		Filters: f,
		Results: rank.TopN(results, func(r Result) float64 { return float64(r.Score) }, topN),
	}, nil
}
