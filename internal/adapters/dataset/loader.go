// Package dataset loads the players.json feed produced by the upstream data
// pipeline. Loading happens exactly once per session: a malformed or
// unreachable dataset is fatal, and no partial pool is ever accepted.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/tbekker/xscout/internal/domain/model"
	"github.com/tbekker/xscout/pkg/metrics"
)

// defaultMinMinutes mirrors the pipeline's qualification threshold (five
// full matches). Records below it indicate a feed that skipped its own
// filtering, so the load is refused rather than quietly re-filtered.
const defaultMinMinutes = 450

const defaultTimeout = 10 * time.Second

// Rater attaches the derived overall rating. Satisfied by the scoring
// engine; injected so the loader does not own rating semantics.
type Rater interface {
	Overall(p *model.Player) int
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithPath sets a local file source.
func WithPath(path string) Option {
	return func(l *Loader) { l.path = path }
}

// WithURL sets an HTTP source. When both a path and a URL are configured the
// URL wins; the file is the development fallback.
func WithURL(url string) Option {
	return func(l *Loader) { l.url = url }
}

// WithTimeout bounds the HTTP fetch.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithMinMinutes overrides the qualification threshold.
func WithMinMinutes(m int) Option {
	return func(l *Loader) {
		if m >= 0 {
			l.minMinutes = m
		}
	}
}

// WithHTTPClient injects a custom HTTP client. Intended for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// Loader fetches, validates, and freezes the player pool.
type Loader struct {
	path       string
	url        string
	timeout    time.Duration
	minMinutes int
	client     *http.Client
	rater      Rater
}

// New creates a Loader. The rater is mandatory: the pool must never exist
// without overall ratings attached.
func New(rater Rater, opts ...Option) (*Loader, error) {
	if rater == nil {
		return nil, fmt.Errorf("%w: nil rater", ErrInvalidSource)
	}
	l := &Loader{
		timeout:    defaultTimeout,
		minMinutes: defaultMinMinutes,
		rater:      rater,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.path == "" && l.url == "" {
		return nil, fmt.Errorf("%w: neither path nor url configured", ErrInvalidSource)
	}
	if l.client == nil {
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l, nil
}

// Load fetches and decodes the dataset, validates every record, sorts the
// pool alphabetically by name (the canonical tie-break order), and runs the
// one-time overall-attachment pass. This is the only place a Player is ever
// mutated.
func (l *Loader) Load(ctx context.Context) ([]*model.Player, error) {
	start := time.Now()

	raw, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", ErrDecode)
	}

	players := make([]*model.Player, 0, len(records))
	for _, r := range records {
		p, err := r.ToPlayer()
		if err != nil {
			return nil, err
		}
		if p.Minutes < l.minMinutes {
			return nil, fmt.Errorf("%w: %q has %d minutes, below the %d qualification threshold",
				model.ErrInvalidRecord, p.Name, p.Minutes, l.minMinutes)
		}
		players = append(players, p)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	for _, p := range players {
		p.Overall = l.rater.Overall(p)
	}

	metrics.ObserveDatasetLoad(time.Since(start).Seconds())
	metrics.SetDatasetPlayers(len(players))
	return players, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if l.url != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, resp.StatusCode, l.url)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}
		return body, nil
	}

	body, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return body, nil
}
