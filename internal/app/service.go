// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/tbekker/xscout/internal/adapters/dataset"
	"github.com/tbekker/xscout/internal/adapters/repository"
	"github.com/tbekker/xscout/internal/domain/catalog"
	"github.com/tbekker/xscout/internal/domain/model"
	"github.com/tbekker/xscout/internal/domain/scoring"
	"github.com/tbekker/xscout/internal/domain/similarity"
	"github.com/tbekker/xscout/pkg/logger"
	"github.com/tbekker/xscout/pkg/metrics"
)

// topRolesN is how many roles the per-player role card shows.
const topRolesN = 3

// PlayerSummary is the list-view shape of a player.
type PlayerSummary struct {
	ID       int    `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Age      int    `json:"age"`
	Minutes  int    `json:"minutes_played"`
	Overall  int    `json:"overall"`
}

// PlayerDetail is the full profile, metric vector included.
type PlayerDetail struct {
	PlayerSummary
	Metrics map[string]float64 `json:"metrics"`
}

// AxisValue is one radar axis evaluated for a player. Value is on the raw
// 0-100 scale; the renderer normalizes for its own geometry.
type AxisValue struct {
	Axis  string  `json:"axis"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RoleWeight is one (metric, weight) pair of a template, for display.
type RoleWeight struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// RoleInfo is the registry view of one template, weights in declaration
// order.
type RoleInfo struct {
	Name    string       `json:"name"`
	Weights []RoleWeight `json:"weights"`
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the dataset loader used by Start.
func WithLoader(l *dataset.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithScoreWorkers sets the shard count for ranking passes.
func WithScoreWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.scoreWorkers = n
		}
	}
}

// Service owns the frozen player pool and the engines, and implements the
// API dependency interfaces. After Start returns, every method is a pure
// read; no locking discipline is needed beyond the startup guard.
type Service struct {
	mu sync.RWMutex

	pool    repository.Store
	scorer  *scoring.Engine
	similar *similarity.Engine
	loader  *dataset.Loader

	scoreWorkers int
	started      bool
	loadedAt     time.Time

	logger logger.Logger
}

// New constructs a Service. A loader must be supplied via WithLoader before
// Start is called.
func New(opts ...Option) *Service {
	s := &Service{
		scoreWorkers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scorer = scoring.NewEngine(scoring.WithWorkers(s.scoreWorkers))
	s.similar = similarity.NewEngine(similarity.WithWorkers(s.scoreWorkers))
	return s
}

// Start validates the static configuration and performs the one-time dataset
// load. Any failure is fatal for the session: no partial pool is accepted.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if err := catalog.Validate(); err != nil {
		return err
	}
	if s.loader == nil {
		return dataset.ErrInvalidSource
	}

	s.logger.Info(ctx, "loading player dataset...")
	players, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	pool, err := repository.NewMemStore(ctx, players)
	if err != nil {
		return err
	}
	s.pool = pool
	s.loadedAt = time.Now()
	s.started = true

	s.logger.Info(ctx, "scouting engine ready",
		logger.Int("players", pool.Count(ctx)),
		logger.Int("metrics", catalog.NumMetrics),
		logger.Int("roles", len(catalog.Roles())),
		logger.Int("scoreWorkers", s.scoreWorkers),
	)
	return nil
}

// Stop releases the service. The pool holds no external resources, so this
// only flips the startup guard.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "scouting engine stopped")
}

// Players returns the pool snapshot in canonical (alphabetical) order.
func (s *Service) Players(ctx context.Context) []PlayerSummary {
	players := s.pool.List(ctx)
	out := make([]PlayerSummary, len(players))
	for i, p := range players {
		out[i] = summarize(p)
	}
	return out
}

// Player returns one full profile.
func (s *Service) Player(ctx context.Context, id int) (PlayerDetail, error) {
	p, err := s.pool.Player(ctx, id)
	if err != nil {
		return PlayerDetail{}, err
	}
	m := make(map[string]float64, catalog.NumMetrics)
	for _, k := range catalog.Metrics() {
		m[k.String()] = p.Metrics.Get(k)
	}
	return PlayerDetail{PlayerSummary: summarize(p), Metrics: m}, nil
}

// Radar returns the player's composite axis values in display order.
func (s *Service) Radar(ctx context.Context, id int) ([]AxisValue, error) {
	p, err := s.pool.Player(ctx, id)
	if err != nil {
		return nil, err
	}
	axes := catalog.Axes()
	out := make([]AxisValue, len(axes))
	for i, ax := range axes {
		out[i] = AxisValue{Axis: ax.Name, Label: ax.Label, Value: s.scorer.RadarValue(p, ax)}
	}
	return out, nil
}

// TopRoles returns the player's best-fitting roles, declaration order
// breaking ties.
func (s *Service) TopRoles(ctx context.Context, id int) ([]scoring.FitResult, error) {
	p, err := s.pool.Player(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.scorer.BestRoles(p, topRolesN), nil
}

// Roles returns the template registry in declaration order.
func (s *Service) Roles(_ context.Context) []RoleInfo {
	roles := catalog.Roles()
	out := make([]RoleInfo, len(roles))
	for i, r := range roles {
		weights := make([]RoleWeight, len(r.Weights))
		for j, mw := range r.Weights {
			weights[j] = RoleWeight{Metric: mw.Key.String(), Label: mw.Key.Label(), Weight: mw.Weight}
		}
		out[i] = RoleInfo{Name: r.Name, Weights: weights}
	}
	return out
}

// RoleLeaderboard ranks the whole pool against a role and returns the top n.
func (s *Service) RoleLeaderboard(ctx context.Context, roleName string, n int) ([]scoring.FitResult, error) {
	start := time.Now()
	ranked, err := s.scorer.RankByRole(ctx, s.pool.List(ctx), roleName)
	if err != nil {
		return nil, err
	}
	metrics.RecordFitComputation(float64(time.Since(start).Milliseconds()))
	metrics.RecordLeaderboardQuery()
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Similar computes a similarity shortlist for a reference player.
func (s *Service) Similar(ctx context.Context, id int, f similarity.Filters, n int) (similarity.Shortlist, error) {
	ref, err := s.pool.Player(ctx, id)
	if err != nil {
		return similarity.Shortlist{}, err
	}
	start := time.Now()
	shortlist, err := s.similar.FindSimilar(ctx, ref, s.pool.List(ctx), f, n)
	if err != nil {
		return similarity.Shortlist{}, err
	}
	metrics.RecordSimilarityQuery(float64(time.Since(start).Milliseconds()))
	return shortlist, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"metrics":      catalog.NumMetrics,
		"roles":        len(catalog.Roles()),
		"axes":         len(catalog.Axes()),
		"scoreWorkers": s.scoreWorkers,
	}
	if s.started {
		stats["players"] = s.pool.Count(context.Background())
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

func summarize(p *model.Player) PlayerSummary {
	return PlayerSummary{
		ID:       p.ID,
		Name:     p.Name,
		Position: string(p.Position),
		Age:      p.Age,
		Minutes:  p.Minutes,
		Overall:  p.Overall,
	}
}
