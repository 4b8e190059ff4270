// Package scoring computes overall ratings, radar axis values, and role fit
// scores from a player's metric vector. Every function here is a pure,
// deterministic computation over immutable inputs.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/tbekker/xscout/internal/domain/catalog"
	"github.com/tbekker/xscout/internal/domain/model"
	"github.com/tbekker/xscout/internal/domain/rank"
)

// Fit score bounds. The ceiling sits below the nominal 100 so no player is
// ever rendered as a perfect fit; the floor guards against future templates
// with unusual weights.
const (
	minFit = 0
	maxFit = 99
)

// FitResult is one role evaluation of one player. Ephemeral, computed on
// demand, never persisted.
type FitResult struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Fit      int    `json:"fit"`
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRoles overrides the role template registry. Intended for tests; the
// production registry comes from the catalog.
func WithRoles(roles []catalog.RoleTemplate) Option {
	return func(e *Engine) {
		if len(roles) > 0 {
			e.roles = roles
		}
	}
}

// WithWorkers sets the shard count for ranking passes over large pools.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Engine is the rating and role-fit scorer.
type Engine struct {
	roles   []catalog.RoleTemplate
	workers int
}

// NewEngine creates a scoring engine over the catalog's role registry.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		roles:   catalog.Roles(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Overall is the unweighted mean of every catalog metric, rounded to the
// nearest integer. Absent metrics read as 0, so a player with no metrics at
// all rates 0 rather than erroring.
func (e *Engine) Overall(p *model.Player) int {
	var sum float64
	for _, k := range catalog.Metrics() {
		sum += p.Metrics.Get(k)
	}
	return int(math.Round(sum / float64(catalog.NumMetrics)))
}

// RadarValue is the unrounded mean of the axis's constituent metrics, on the
// raw 0-100 scale. The renderer divides by 100 for its own geometry. An axis
// with no metrics is a configuration error caught by catalog.Validate at
// startup, never here.
func (e *Engine) RadarValue(p *model.Player, axis catalog.RadarAxis) float64 {
	var sum float64
	for _, k := range axis.Metrics {
		sum += p.Metrics.Get(k)
	}
	return sum / float64(len(axis.Metrics))
}

// RoleFit is the weighted sum of the template's metrics over the player's
// values, rounded and clamped to [0, 99].
func (e *Engine) RoleFit(p *model.Player, tpl catalog.RoleTemplate) int {
	var score float64
	for _, mw := range tpl.Weights {
		score += mw.Weight * p.Metrics.Get(mw.Key)
	}
	fit := int(math.Round(score))
	if fit > maxFit {
		fit = maxFit
	}
	if fit < minFit {
		fit = minFit
	}
	return fit
}

// RankByRole scores every player against the named role and returns them
// descending by fit. Equal fits keep the pool's order, which is alphabetical
// by name from load time, so leaderboards are reproducible.
func (e *Engine) RankByRole(ctx context.Context, players []*model.Player, roleName string) ([]FitResult, error) {
	tpl, ok := e.roleByName(roleName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownRole, roleName)
	}
	fits, err := rank.ScoreAll(ctx, players, e.workers, func(p *model.Player) float64 {
		return float64(e.RoleFit(p, tpl))
	})
	if err != nil {
		return nil, err
	}
	results := make([]FitResult, len(players))
	for i, p := range players {
		results[i] = FitResult{PlayerID: p.ID, Name: p.Name, Role: tpl.Name, Fit: int(fits[i])}
	}
	return rank.TopN(results, func(r FitResult) float64 { return float64(r.Fit) }, len(results)), nil
}

// BestRoles evaluates every registered template for the player and returns
// the top n by fit. Ties resolve to the first-declared template; registry
// declaration order is the tie-break priority.
func (e *Engine) BestRoles(p *model.Player, n int) []FitResult {
	results := make([]FitResult, len(e.roles))
	for i, tpl := range e.roles {
		results[i] = FitResult{PlayerID: p.ID, Name: p.Name, Role: tpl.Name, Fit: e.RoleFit(p, tpl)}
	}
	return rank.TopN(results, func(r FitResult) float64 { return float64(r.Fit) }, n)
}

// BestRole returns the single best-fitting role for the player.
func (e *Engine) BestRole(p *model.Player) FitResult {
	return e.BestRoles(p, 1)[0]
}

// Roles exposes the registry this engine ranks against, in declaration order.
func (e *Engine) Roles() []catalog.RoleTemplate {
	return e.roles
}

func (e *Engine) roleByName(name string) (catalog.RoleTemplate, bool) {
	for _, r := range e.roles {
		if r.Name == name {
			return r, true
		}
	}
	return catalog.RoleTemplate{}, false
}
